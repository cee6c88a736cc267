package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/serializer"
)

// maxImageSize bounds a single uploaded image.
const maxImageSize = 10 << 20 // 10 MiB

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type UploadHandler struct {
	blob Uploader
	log  *zap.Logger
}

func NewUploadHandler(blob Uploader, log *zap.Logger) *UploadHandler {
	return &UploadHandler{blob: blob, log: log}
}

// UploadImage godoc
//
//	@Summary		Upload image
//	@Description	Upload a single image and return its public URL.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Image file"
//	@Success		200		{object}	serializer.Response{data=string}
//	@Failure		400		{object}	serializer.Response
//	@Failure		500		{object}	serializer.Response
//	@Router			/upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err("No image uploaded"))
		return
	}

	url, err := h.storeImage(c.Request.Context(), fh)
	if err != nil {
		h.uploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.OK(url))
}

// UploadImages godoc
//
//	@Summary		Upload images
//	@Description	Upload multiple images and return their public URLs.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			images	formData	file	true	"Image files"
//	@Success		200		{object}	serializer.Response{data=[]string}
//	@Failure		400		{object}	serializer.Response
//	@Failure		500		{object}	serializer.Response
//	@Router			/upload/images [post]
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		c.JSON(http.StatusBadRequest, serializer.Err("No images uploaded"))
		return
	}

	urls := make([]string, 0, len(form.File["images"]))
	for _, fh := range form.File["images"] {
		url, err := h.storeImage(c.Request.Context(), fh)
		if err != nil {
			h.uploadError(c, err)
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, serializer.OK(urls))
}

type badImageError struct{ msg string }

func (e badImageError) Error() string { return e.msg }

// storeImage sniffs the content type, rejects non-images, and stores the
// file under a fresh uuid key.
func (h *UploadHandler) storeImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxImageSize {
		return "", badImageError{msg: "Image exceeds the 10MB limit"}
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, maxImageSize))
	if err != nil {
		return "", err
	}

	mtype := mimetype.Detect(buf)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", badImageError{msg: "File is not an image"}
	}

	key := "uploads/" + uuid.NewString() + mtype.Extension()
	return h.blob.Upload(ctx, key, mtype.String(), bytes.NewReader(buf))
}

func (h *UploadHandler) uploadError(c *gin.Context, err error) {
	var bad badImageError
	if errors.As(err, &bad) {
		c.JSON(http.StatusBadRequest, serializer.Err(bad.msg))
		return
	}
	h.log.Error("failed to upload image", zap.Error(err))
	c.JSON(http.StatusInternalServerError, serializer.Err("Failed to upload image"))
}
