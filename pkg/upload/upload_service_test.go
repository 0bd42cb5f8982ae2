package upload_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"path"
	"testing"
	"time"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/entities"
	"Food-Sustainability-Backend/internal/testutil"
	"Food-Sustainability-Backend/pkg/food"
	"Food-Sustainability-Backend/pkg/inventory"
	"Food-Sustainability-Backend/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fakeS3 struct {
	uploaded []string
	deleted  []string
	onUpload func()
}

func (f *fakeS3) UploadFile(_ context.Context, fileName string, file *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := path.Join(folder, fileName+path.Ext(file.Filename))
	f.uploaded = append(f.uploaded, key)
	if f.onUpload != nil {
		f.onUpload()
	}
	return key, nil
}

func (f *fakeS3) DeleteFile(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(key string) string { return "https://bucket.example.com/" + key }

type fakeExtractor struct {
	items []domain.ProposedItem
	got   []byte
}

func (f *fakeExtractor) AnalyzeInventoryImage(_ context.Context, image []byte, _ string) []domain.ProposedItem {
	f.got = image
	return f.items
}

type fixture struct {
	svc       upload.UploadService
	inventory inventory.InventoryService
	s3        *fakeS3
	extractor *fakeExtractor
	clock     *testutil.Clock
	userID    string
}

func setup(t *testing.T) fixture {
	t.Helper()

	db := testutil.NewDB(t)
	user := &entities.User{Name: "Ira", Email: "ira@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	clock := testutil.NewClock(time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC))
	foods := food.NewFoodService(food.NewFoodRepository(db))
	inv := inventory.NewInventoryService(inventory.NewInventoryRepository(db), foods, clock)

	f := fixture{
		inventory: inv,
		s3:        &fakeS3{},
		extractor: &fakeExtractor{},
		clock:     clock,
		userID:    user.ID.String(),
	}
	f.svc = upload.NewUploadService(upload.NewUploadRepository(db), inv, f.extractor, f.s3, clock)
	return f
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

// diskFileHeader spills the part to a temp file so the caller can remove it
// through the returned form.
func diskFileHeader(t *testing.T, name string, content []byte) (*multipart.FileHeader, *multipart.Form) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1))
	t.Cleanup(func() { _ = req.MultipartForm.RemoveAll() })
	return req.MultipartForm.File["file"][0], req.MultipartForm
}

func TestReconcileNormalisesProposals(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	saved := f.svc.Reconcile(ctx, f.userID, []domain.ProposedItem{
		{Name: "Eggs", Quantity: "2 count", ExpiryDate: "2024-02-20"},
		{Name: "Flour", Quantity: "500g", ExpiryDate: "soon"},
		{Name: "", Quantity: "", ExpiryDate: ""},
	})
	assert.Equal(t, 3, saved)

	items, err := f.inventory.FindByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	byName := map[string]domain.InventoryItemResponse{}
	for _, it := range items {
		byName[it.Item.Name] = it
	}

	eggs := byName["Eggs"]
	assert.Equal(t, 2.0, eggs.Quantity)
	require.NotNil(t, eggs.ExpiryDate)
	assert.True(t, eggs.ExpiryDate.Equal(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)))

	flour := byName["Flour"]
	assert.Equal(t, 1.0, flour.Quantity)
	require.NotNil(t, flour.ExpiryDate)
	assert.True(t, flour.ExpiryDate.Equal(f.clock.Now().AddDate(0, 0, 7)))

	unknown, ok := byName[domain.UnknownItemName]
	require.True(t, ok)
	assert.Equal(t, 1.0, unknown.Quantity)
}

func TestReconcileSkipsFailures(t *testing.T) {
	f := setup(t)

	saved := f.svc.Reconcile(context.Background(), "not-a-user-id", []domain.ProposedItem{{Name: "Eggs"}})
	assert.Zero(t, saved)
}

func TestUploadReceipt(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.extractor.items = []domain.ProposedItem{{Name: "Milk", Quantity: "1", ExpiryDate: "2024-02-15"}}

	res, err := f.svc.UploadReceipt(ctx, f.userID, fileHeader(t, "receipt.png", pngHeader))
	require.NoError(t, err)

	assert.Equal(t, 1, res.SavedCount)
	assert.Len(t, res.ProposedItems, 1)
	assert.Equal(t, "image/png", res.Upload.MimeType)
	assert.Equal(t, "receipt", res.Upload.Type)
	assert.Equal(t, "receipts", res.Upload.Folder)
	assert.Equal(t, "receipt.png", res.Upload.OriginalName)
	require.Len(t, f.s3.uploaded, 1)
	assert.Contains(t, res.Upload.URL, f.s3.uploaded[0])
	assert.Equal(t, pngHeader, f.extractor.got)

	list, err := f.svc.GetMyReceipts(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
}

func TestUploadReceiptReadsFileBeforeStoring(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.extractor.items = []domain.ProposedItem{{Name: "Milk", Quantity: "1"}}

	file, form := diskFileHeader(t, "receipt.png", pngHeader)
	f.s3.onUpload = func() { require.NoError(t, form.RemoveAll()) }

	res, err := f.svc.UploadReceipt(ctx, f.userID, file)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SavedCount)
	assert.Equal(t, pngHeader, f.extractor.got)
	assert.Empty(t, f.s3.deleted)
}

func TestUploadReceiptRejections(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.UploadReceipt(ctx, f.userID, nil)
	assert.ErrorIs(t, err, domain.ErrNoFileReceived)

	_, err = f.svc.UploadReceipt(ctx, f.userID, fileHeader(t, "notes.txt", []byte("just some plain text")))
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)

	big := append(append([]byte{}, pngHeader...), make([]byte, domain.MaxReceiptSize)...)
	_, err = f.svc.UploadReceipt(ctx, f.userID, fileHeader(t, "big.png", big))
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	assert.Empty(t, f.s3.uploaded)
}

func TestGetMyReceiptsNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.UploadReceipt(ctx, f.userID, fileHeader(t, "first.png", pngHeader))
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	_, err = f.svc.UploadReceipt(ctx, f.userID, fileHeader(t, "second.png", pngHeader))
	require.NoError(t, err)

	list, err := f.svc.GetMyReceipts(ctx, f.userID)
	require.NoError(t, err)
	require.Equal(t, 2, list.Count)
	assert.Equal(t, "second.png", list.Data[0].OriginalName)
	assert.Equal(t, "first.png", list.Data[1].OriginalName)
}
