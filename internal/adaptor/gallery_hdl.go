package adaptor

import (
	"mime/multipart"
	"net/http"
	"strings"

	"resort-admin/internal/dto/request"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GalleryHandler struct {
	service   usecase.GalleryService
	maxUpload int64
	log       *zap.Logger
}

func NewGalleryHandler(service usecase.GalleryService, maxUpload int64, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		service:   service,
		maxUpload: maxUpload,
		log:       log.With(zap.String("handler", "gallery")),
	}
}

// GetImages handles GET /admin/gallery
func (h *GalleryHandler) GetImages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.GalleryListRequest{
		PaginatedRequest: paginationFrom(query),
		Category:         optionalQuery(query, "category"),
		Search:           optionalQuery(query, "search"),
	}

	images, err := h.service.GetImages(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get gallery images")
		return
	}

	utils.ResponseSuccess(w, "success", images)
}

// GetImageByID handles GET /admin/gallery/{id}
func (h *GalleryHandler) GetImageByID(w http.ResponseWriter, r *http.Request) {
	image, err := h.service.GetImageByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get gallery image by ID")
		return
	}

	utils.ResponseSuccess(w, "success", image)
}

// GetStats handles GET /admin/gallery/stats
func (h *GalleryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get gallery stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// UploadImages handles POST /admin/gallery. Files arrive as multipart
// "images"; a JSON body may carry image_urls instead.
func (h *GalleryHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	var (
		req   request.GalleryUploadRequest
		files []*multipart.FileHeader
	)

	if isMultipart(r) {
		if err := r.ParseMultipartForm(h.maxUpload); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}
		form := r.MultipartForm
		files = append(form.File["images"], form.File["images[]"]...)
		req.Title = r.FormValue("title")
		req.Category = r.FormValue("category")
		req.AltText = utils.StringPtr(r.FormValue("alt_text"))
		req.Description = utils.StringPtr(r.FormValue("description"))
		req.ImageURLs = splitURLs(form.Value["image_urls"])
	} else if !decodeAndValidate(w, r, &req) {
		return
	}

	uploaded, err := h.service.UploadImages(r.Context(), &req, files)
	if err != nil {
		handleServiceError(w, h.log, err, "upload gallery images")
		return
	}

	utils.ResponseCreated(w, "Images uploaded successfully", uploaded)
}

// UpdateImage handles PUT /admin/gallery/{id}
func (h *GalleryHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateGalleryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	image, err := h.service.UpdateImage(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update gallery image")
		return
	}

	utils.ResponseSuccess(w, "Image updated successfully", image)
}

// DeleteImage handles DELETE /admin/gallery/{id}
func (h *GalleryHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteImage(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete gallery image")
		return
	}

	utils.ResponseSuccess(w, "Image deleted successfully", nil)
}

// UploadFile handles POST /admin/upload
func (h *GalleryHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if !isMultipart(r) {
		utils.ResponseBadRequest(w, "Expected multipart/form-data", nil)
		return
	}
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	_, fh, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "No file uploaded", nil)
		return
	}

	uploaded, err := h.service.UploadFile(r.Context(), r.FormValue("folder"), fh)
	if err != nil {
		handleServiceError(w, h.log, err, "upload file")
		return
	}

	utils.ResponseCreated(w, "File uploaded successfully", uploaded)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// splitURLs accepts repeated fields as well as comma separated lists.
func splitURLs(values []string) []string {
	var urls []string
	for _, v := range values {
		for _, u := range strings.Split(v, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls
}
