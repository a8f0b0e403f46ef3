package contracts

import (
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type DocumentUsecase interface {
	StageFiles(ctx context.Context, request *requests.StageFiles) (*responses.StagingList, error)
	AssignCategory(ctx context.Context, userID string, request *requests.AssignCategory) (*responses.StagingList, error)
	RemoveStagedFile(ctx context.Context, userID, fileID string) (*responses.StagingList, error)
	ListStaged(ctx context.Context, userID string) (*responses.StagingList, error)
	CommitUpload(ctx context.Context, sessionID string) (*responses.CommitUpload, error)
	Progress(ctx context.Context, userID string) (*responses.UploadProgress, error)
	List(ctx context.Context, sessionID string, query *requests.DocumentQuery) (*responses.DocumentList, error)
	Summary(ctx context.Context, sessionID string) (*models.ReportSummary, error)
}

type StagingRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.StagingBatch, error)
	Save(ctx context.Context, batch *models.StagingBatch) error
	DeleteByUserID(ctx context.Context, userID string) error
	FindUpdatedBefore(ctx context.Context, before time.Time) ([]models.StagingBatch, error)
	EnsureIndexes(ctx context.Context) error
}
