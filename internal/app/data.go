package app

import (
	"path/filepath"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/domain/prediction"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/jsonfile"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

// DataServices holds the file transforms used by the matchday CLI.
type DataServices struct {
	Paths       usecase.PipelinePaths
	EnglishFile string
	Store       *jsonfile.Store

	Predictions *usecase.PredictionService
	English     *usecase.EnglishMatchService
	Processed   *usecase.ProcessedMatchService
	Display     *usecase.DisplayService
	Copy        *usecase.CopyService
	Consistency *usecase.ConsistencyService
	Console     *usecase.ConsoleService
	Pipeline    *usecase.PipelineService
}

func NewDataServices(cfg config.Config, logger *logging.Logger) *DataServices {
	if logger == nil {
		logger = logging.Default()
	}

	store := jsonfile.NewStore()

	rng := prediction.NewRandom()
	if cfg.PredictorSeed != 0 {
		rng = prediction.NewSeeded(cfg.PredictorSeed)
	}
	predictor := prediction.NewPredictor(prediction.DefaultRules(), rng)

	paths := usecase.PipelinePaths{
		DataDir:       cfg.DataDir,
		PublicDataDir: cfg.PublicDataDir,
		MatchesFile:   cfg.MatchesFile,
		AnalysisFile:  cfg.AnalysisFile,
		ProcessedFile: cfg.ProcessedFile,
	}

	predictionSvc := usecase.NewPredictionService(store, store, predictor, logger)
	processedSvc := usecase.NewProcessedMatchService(store, store, logger)
	displaySvc := usecase.NewDisplayService(store, logger)
	copySvc := usecase.NewCopyService(store, cfg.DataDir, cfg.PublicDataDir, logger)

	return &DataServices{
		Paths:       paths,
		EnglishFile: cfg.EnglishFile,
		Store:       store,
		Predictions: predictionSvc,
		English:     usecase.NewEnglishMatchService(store, store, logger),
		Processed:   processedSvc,
		Display:     displaySvc,
		Copy:        copySvc,
		Consistency: usecase.NewConsistencyService(store, analysis.DefaultSumTolerance, logger),
		Console:     usecase.NewConsoleService(store, logger),
		Pipeline:    usecase.NewPipelineService(predictionSvc, processedSvc, displaySvc, copySvc, paths, logger),
	}
}

func (d *DataServices) MatchesPath() string {
	return filepath.Join(d.Paths.DataDir, d.Paths.MatchesFile)
}

func (d *DataServices) AnalysisPath() string {
	return filepath.Join(d.Paths.DataDir, d.Paths.AnalysisFile)
}

func (d *DataServices) ProcessedPath() string {
	return filepath.Join(d.Paths.DataDir, d.Paths.ProcessedFile)
}

func (d *DataServices) EnglishPath() string {
	return filepath.Join(d.Paths.DataDir, d.EnglishFile)
}

func (d *DataServices) PublicAnalysisPath() string {
	return filepath.Join(d.Paths.PublicDataDir, d.Paths.AnalysisFile)
}
