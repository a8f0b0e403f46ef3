package documents

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	stagingObjectPrefix = "staging"
	progressTTL         = time.Hour
)

var defaultFileTypeToggles = []string{
	constvars.FileTypeTogglePDF,
	constvars.FileTypeToggleImage,
	constvars.FileTypeToggleDoc,
}

type documentUsecase struct {
	StagingRepository contracts.StagingRepository
	Storage           contracts.Storage
	RedisRepository   contracts.RedisRepository
	SessionService    contracts.SessionService
	Upstream          contracts.ArogyaNetraClient
	AuditPublisher    contracts.AuditPublisher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	location          *time.Location
}

func NewDocumentUsecase(
	stagingRepository contracts.StagingRepository,
	storage contracts.Storage,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	upstream contracts.ArogyaNetraClient,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("documentUsecase unknown timezone, using UTC",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.UTC
	}

	return &documentUsecase{
		StagingRepository: stagingRepository,
		Storage:           storage,
		RedisRepository:   redisRepository,
		SessionService:    sessionService,
		Upstream:          upstream,
		AuditPublisher:    auditPublisher,
		InternalConfig:    internalConfig,
		Log:               logger,
		location:          location,
	}
}

func progressKey(userID string) string {
	return fmt.Sprintf(constvars.RedisKeyUploadProgressFormat, userID)
}

// StageFiles validates every file before storing any of them.
func (uc *documentUsecase) StageFiles(ctx context.Context, request *requests.StageFiles) (*responses.StagingList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.StageFiles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.Int(constvars.LoggingFileCountKey, len(request.Files)),
	)

	toggles := request.EnabledTypes
	if len(toggles) == 0 {
		toggles = defaultFileTypeToggles
	}
	limit := int64(uc.InternalConfig.Upload.MaxFileSizeInMB) * constvars.BytesInMegabyte
	for _, file := range request.Files {
		if file.Size > limit {
			return nil, exceptions.ErrFileTooLarge(nil, file.FileName, file.Size, limit)
		}
		if !utils.MatchesFileTypeToggles(file.ContentType, toggles) {
			return nil, exceptions.ErrFileTypeNotAllowed(nil, file.FileName, file.ContentType)
		}
	}

	batch, err := uc.loadOrCreateBatch(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	bucket := uc.InternalConfig.Minio.StagingBucketName
	now := time.Now()
	for i, file := range request.Files {
		objectKey := utils.GenerateObjectKey(stagingObjectPrefix, request.UserID, file.FileName)
		err := uc.Storage.PutObject(ctx, bucket, objectKey, file.Content, file.ContentType)
		if err != nil {
			uc.Log.Error("documentUsecase.StageFiles error storing object",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, objectKey),
				zap.Error(err),
			)
			return nil, err
		}

		category := ""
		if i < len(request.Categories) {
			category = request.Categories[i]
		}
		batch.Files = append(batch.Files, models.StagedFile{
			ID:          uuid.NewString(),
			FileName:    file.FileName,
			ContentType: file.ContentType,
			Size:        file.Size,
			ObjectKey:   objectKey,
			Category:    category,
			StagedAt:    now,
		})
	}

	batch.UpdatedAt = now
	if err := uc.StagingRepository.Save(ctx, batch); err != nil {
		return nil, err
	}
	return buildStagingList(batch), nil
}

func (uc *documentUsecase) AssignCategory(ctx context.Context, userID string, request *requests.AssignCategory) (*responses.StagingList, error) {
	batch, err := uc.StagingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, exceptions.ErrStagedFileNotFound(nil, request.FileID)
	}

	found := false
	for i := range batch.Files {
		if batch.Files[i].ID == request.FileID {
			batch.Files[i].Category = request.Category
			found = true
			break
		}
	}
	if !found {
		return nil, exceptions.ErrStagedFileNotFound(nil, request.FileID)
	}

	batch.UpdatedAt = time.Now()
	if err := uc.StagingRepository.Save(ctx, batch); err != nil {
		return nil, err
	}
	return buildStagingList(batch), nil
}

func (uc *documentUsecase) RemoveStagedFile(ctx context.Context, userID, fileID string) (*responses.StagingList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	batch, err := uc.StagingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, exceptions.ErrStagedFileNotFound(nil, fileID)
	}

	kept := make([]models.StagedFile, 0, len(batch.Files))
	var removed *models.StagedFile
	for i := range batch.Files {
		if batch.Files[i].ID == fileID {
			removed = &batch.Files[i]
			continue
		}
		kept = append(kept, batch.Files[i])
	}
	if removed == nil {
		return nil, exceptions.ErrStagedFileNotFound(nil, fileID)
	}

	err = uc.Storage.RemoveObject(ctx, uc.InternalConfig.Minio.StagingBucketName, removed.ObjectKey)
	if err != nil {
		uc.Log.Warn("documentUsecase.RemoveStagedFile error removing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, removed.ObjectKey),
			zap.Error(err),
		)
	}

	batch.Files = kept
	batch.UpdatedAt = time.Now()
	if len(kept) == 0 {
		err = uc.StagingRepository.DeleteByUserID(ctx, userID)
	} else {
		err = uc.StagingRepository.Save(ctx, batch)
	}
	if err != nil {
		return nil, err
	}
	return buildStagingList(batch), nil
}

func (uc *documentUsecase) ListStaged(ctx context.Context, userID string) (*responses.StagingList, error) {
	batch, err := uc.StagingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		batch = &models.StagingBatch{UserID: userID}
	}
	return buildStagingList(batch), nil
}

// CommitUpload sends the whole staged batch in one multipart request. It
// refuses before any upstream call while a file lacks a category.
func (uc *documentUsecase) CommitUpload(ctx context.Context, sessionID string) (*responses.CommitUpload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.CommitUpload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	userID := session.UserID()

	batch, err := uc.StagingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if batch == nil || len(batch.Files) == 0 {
		return nil, exceptions.ErrStagingEmpty(nil)
	}
	if missing := batch.Uncategorized(); len(missing) > 0 {
		return nil, exceptions.ErrCategoriesMissing(nil, missing)
	}

	bucket := uc.InternalConfig.Minio.StagingBucketName
	parts := make([]requests.DocumentPart, 0, len(batch.Files))
	readers := make([]io.ReadCloser, 0, len(batch.Files))
	defer func() {
		for _, reader := range readers {
			reader.Close()
		}
	}()
	for _, file := range batch.Files {
		reader, err := uc.Storage.GetObject(ctx, bucket, file.ObjectKey)
		if err != nil {
			return nil, err
		}
		readers = append(readers, reader)
		parts = append(parts, requests.DocumentPart{
			FileName:    file.FileName,
			ContentType: file.ContentType,
			Category:    file.Category,
			Size:        file.Size,
			Content:     reader,
		})
	}

	tracker := &progressTracker{ctx: ctx, uc: uc, userID: userID, last: -1}
	tracker.write(0, constvars.UploadStatusUploading)

	err = uc.Upstream.UploadDocuments(ctx, session.Token, userID, parts, tracker.report)
	if err != nil {
		tracker.fail()
		uc.Log.Error("documentUsecase.CommitUpload error calling upstream UploadDocuments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	tracker.write(100, constvars.UploadStatusCompleted)

	uc.clearCommitted(ctx, requestID, userID, batch.Files)

	uc.AuditPublisher.Publish(ctx, models.AuditEvent{
		Type:       constvars.AuditEventDocumentsUploaded,
		ActorID:    userID,
		SubjectID:  userID,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Attributes: map[string]string{"file_count": strconv.Itoa(len(batch.Files))},
	})

	uc.Log.Info("documentUsecase.CommitUpload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Int(constvars.LoggingFileCountKey, len(batch.Files)),
	)
	return &responses.CommitUpload{
		Uploaded:  len(batch.Files),
		NextRoute: constvars.RouteViewDocuments,
	}, nil
}

// clearCommitted drops the sent files from staging. Files staged while the
// upload was running stay in the batch.
func (uc *documentUsecase) clearCommitted(ctx context.Context, requestID, userID string, sent []models.StagedFile) {
	bucket := uc.InternalConfig.Minio.StagingBucketName
	sentIDs := make(map[string]bool, len(sent))
	for _, file := range sent {
		sentIDs[file.ID] = true
		if err := uc.Storage.RemoveObject(ctx, bucket, file.ObjectKey); err != nil {
			uc.Log.Warn("documentUsecase.CommitUpload error removing staged object",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, file.ObjectKey),
				zap.Error(err),
			)
		}
	}

	current, err := uc.StagingRepository.FindByUserID(ctx, userID)
	if err != nil {
		uc.Log.Warn("documentUsecase.CommitUpload error reloading staging batch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if current == nil {
		return
	}

	remaining := make([]models.StagedFile, 0, len(current.Files))
	for _, file := range current.Files {
		if !sentIDs[file.ID] {
			remaining = append(remaining, file)
		}
	}
	if len(remaining) == 0 {
		err = uc.StagingRepository.DeleteByUserID(ctx, userID)
	} else {
		current.Files = remaining
		current.UpdatedAt = time.Now()
		err = uc.StagingRepository.Save(ctx, current)
	}
	if err != nil {
		uc.Log.Warn("documentUsecase.CommitUpload error clearing staging batch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *documentUsecase) Progress(ctx context.Context, userID string) (*responses.UploadProgress, error) {
	progress := new(responses.UploadProgress)
	found, err := uc.RedisRepository.GetInto(ctx, progressKey(userID), progress)
	if err != nil {
		return nil, err
	}
	if !found {
		return &responses.UploadProgress{Percent: 0, Status: constvars.UploadStatusIdle}, nil
	}
	return progress, nil
}

func (uc *documentUsecase) List(ctx context.Context, sessionID string, query *requests.DocumentQuery) (*responses.DocumentList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	docs, err := uc.Upstream.GetDocuments(ctx, session.Token, session.UserID())
	if err != nil {
		uc.Log.Error("documentUsecase.List error calling upstream GetDocuments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	projected := Project(docs, Filters{
		Name:     query.Name,
		Type:     query.Type,
		Category: query.Category,
		Date:     query.Date,
		Month:    query.Month,
		Year:     query.Year,
		Location: uc.location,
	}, Sort{By: query.SortBy, Order: query.Order})

	view := query.View
	if view == "" {
		view = constvars.DocumentViewGrouped
	}
	response := &responses.DocumentList{View: view, Total: len(projected)}
	if view == constvars.DocumentViewGrouped {
		response.Groups = Group(projected)
	} else {
		response.Documents = projected
	}
	return response, nil
}

func (uc *documentUsecase) Summary(ctx context.Context, sessionID string) (*models.ReportSummary, error) {
	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.Upstream.GetReportSummary(ctx, session.Token, session.UserID())
}

func (uc *documentUsecase) loadOrCreateBatch(ctx context.Context, userID string) (*models.StagingBatch, error) {
	batch, err := uc.StagingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if batch != nil {
		return batch, nil
	}
	return &models.StagingBatch{
		ID:        uuid.NewString(),
		UserID:    userID,
		Files:     make([]models.StagedFile, 0),
		CreatedAt: time.Now(),
	}, nil
}

func buildStagingList(batch *models.StagingBatch) *responses.StagingList {
	files := batch.Files
	if files == nil {
		files = make([]models.StagedFile, 0)
	}
	missing := batch.Uncategorized()
	return &responses.StagingList{
		Files:             files,
		MissingCategories: missing,
		Ready:             len(files) > 0 && len(missing) == 0,
	}
}

// progressTracker writes the upload percentage to Redis whenever it moves.
// Nothing is written after a completed or failed status.
type progressTracker struct {
	ctx    context.Context
	uc     *documentUsecase
	userID string

	mu       sync.Mutex
	last     int
	terminal bool
}

func (p *progressTracker) report(sent, total int64) {
	percent := 100
	if total > 0 {
		percent = int(sent * 100 / total)
	}
	if percent > 100 {
		percent = 100
	}
	p.write(percent, constvars.UploadStatusUploading)
}

func (p *progressTracker) write(percent int, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.terminal {
		return
	}
	if percent == p.last && status == constvars.UploadStatusUploading {
		return
	}
	p.last = percent
	p.terminal = status != constvars.UploadStatusUploading

	err := p.uc.RedisRepository.Set(p.ctx, progressKey(p.userID), responses.UploadProgress{Percent: percent, Status: status}, progressTTL)
	if err != nil {
		p.uc.Log.Warn("documentUsecase progress write failed",
			zap.String(constvars.LoggingUserIDKey, p.userID),
			zap.Error(err),
		)
	}
}

func (p *progressTracker) fail() {
	p.mu.Lock()
	last := p.last
	p.mu.Unlock()
	if last < 0 {
		last = 0
	}
	p.write(last, constvars.UploadStatusFailed)
}
