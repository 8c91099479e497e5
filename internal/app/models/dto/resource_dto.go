package dto

// ResourceFilter carries list filters for resources
type ResourceFilter struct {
	Subject  *string
	FileType *string
	Search   *string
	Page     int
	Limit    int
}

// CreateResourceRequest is the multipart form payload for POST /resources.
// The file part is handled separately by the controller.
type CreateResourceRequest struct {
	Title       string `form:"title" binding:"required,min=3"`
	Description string `form:"description" binding:"required,min=10"`
	Subject     string `form:"subject" binding:"required"`
}

// DownloadResponse carries the stored file URL
type DownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}
