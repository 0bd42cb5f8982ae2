package upload

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"slices"
	"strconv"
	"strings"
	"time"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/entities"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/internal/utils/storage"
	"Food-Sustainability-Backend/pkg/inventory"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	// ItemExtractor proposes inventory items found in a receipt image.
	ItemExtractor interface {
		AnalyzeInventoryImage(ctx context.Context, image []byte, mimeType string) []domain.ProposedItem
	}

	UploadService interface {
		UploadReceipt(ctx context.Context, userID string, file *multipart.FileHeader) (domain.UploadReceiptResponse, error)
		Reconcile(ctx context.Context, userID string, proposals []domain.ProposedItem) int
		GetMyReceipts(ctx context.Context, userID string) (domain.ReceiptListResponse, error)
	}

	uploadService struct {
		uploadRepository UploadRepository
		inventoryService inventory.InventoryService
		extractor        ItemExtractor
		s3               storage.AwsS3
		clock            utils.Clock
	}
)

func NewUploadService(
	uploadRepository UploadRepository,
	inventoryService inventory.InventoryService,
	extractor ItemExtractor,
	s3 storage.AwsS3,
	clock utils.Clock,
) UploadService {
	return &uploadService{
		uploadRepository: uploadRepository,
		inventoryService: inventoryService,
		extractor:        extractor,
		s3:               s3,
		clock:            clock,
	}
}

func (s *uploadService) UploadReceipt(ctx context.Context, userID string, file *multipart.FileHeader) (domain.UploadReceiptResponse, error) {
	if file == nil {
		return domain.UploadReceiptResponse{}, domain.ErrNoFileReceived
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	if file.Size > domain.MaxReceiptSize {
		return domain.UploadReceiptResponse{}, domain.ErrFileTooLarge
	}

	mimeType, err := storage.DetectMimeType(file)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	if !slices.Contains(domain.AllowedReceiptTypes, mimeType) {
		return domain.UploadReceiptResponse{}, domain.ErrInvalidFileType
	}

	data, err := readAll(file)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	objectKey, err := s.s3.UploadFile(ctx, uuid.NewString(), file, domain.ReceiptFolder, domain.AllowedReceiptTypes...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return domain.UploadReceiptResponse{}, domain.ErrInvalidFileType
		}
		return domain.UploadReceiptResponse{}, err
	}

	upload := &entities.Upload{
		ID:           uuid.New(),
		UserID:       userUUID,
		URL:          s.s3.GetPublicLinkKey(objectKey),
		StorageKey:   objectKey,
		OriginalName: file.Filename,
		MimeType:     mimeType,
		Size:         file.Size,
		Folder:       domain.ReceiptFolder,
		Type:         entities.UploadTypeReceipt,
	}
	upload.CreatedAt = s.clock.Now()

	if err := s.uploadRepository.CreateUpload(ctx, upload); err != nil {
		if delErr := s.s3.DeleteFile(ctx, objectKey); delErr != nil {
			zap.L().Warn("remove orphaned receipt object", zap.String("key", objectKey), zap.Error(delErr))
		}
		return domain.UploadReceiptResponse{}, err
	}

	proposals := s.extractor.AnalyzeInventoryImage(ctx, data, mimeType)
	if proposals == nil {
		proposals = []domain.ProposedItem{}
	}
	saved := s.Reconcile(ctx, userID, proposals)

	return domain.UploadReceiptResponse{
		Upload:        toResponse(upload),
		ProposedItems: proposals,
		SavedCount:    saved,
	}, nil
}

// Reconcile adds each proposal to the user's inventory in order. A failing
// item is logged and skipped; the number of items saved is returned.
func (s *uploadService) Reconcile(ctx context.Context, userID string, proposals []domain.ProposedItem) int {
	saved := 0
	for _, p := range proposals {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = domain.UnknownItemName
		}

		expiry := s.parseExpiry(p.ExpiryDate)
		if _, err := s.inventoryService.AddItem(ctx, userID, name, parseQuantity(string(p.Quantity)), &expiry); err != nil {
			zap.L().Warn("skip proposed receipt item", zap.String("name", name), zap.Error(err))
			continue
		}
		saved++
	}
	return saved
}

func (s *uploadService) parseExpiry(raw string) time.Time {
	if t, ok := utils.ParseDate(raw); ok {
		return t
	}
	return s.clock.Now().AddDate(0, 0, domain.DefaultExpiryDays)
}

// parseQuantity reads the leading integer of strings like "2 count".
func parseQuantity(raw string) float64 {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 1
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 {
		return 1
	}
	return float64(n)
}

func (s *uploadService) GetMyReceipts(ctx context.Context, userID string) (domain.ReceiptListResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.ReceiptListResponse{}, domain.ErrParseUUID
	}

	uploads, err := s.uploadRepository.GetUploadsByUser(ctx, userID, entities.UploadTypeReceipt)
	if err != nil {
		return domain.ReceiptListResponse{}, err
	}

	data := make([]domain.UploadResponse, 0, len(uploads))
	for _, upload := range uploads {
		data = append(data, toResponse(upload))
	}
	return domain.ReceiptListResponse{Count: len(data), Data: data}, nil
}

func readAll(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func toResponse(upload *entities.Upload) domain.UploadResponse {
	return domain.UploadResponse{
		ID:           upload.ID.String(),
		URL:          upload.URL,
		OriginalName: upload.OriginalName,
		MimeType:     upload.MimeType,
		Size:         upload.Size,
		Folder:       upload.Folder,
		Type:         upload.Type,
		CreatedAt:    upload.CreatedAt,
	}
}
