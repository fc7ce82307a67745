package api

// FileUpload is returned after storing a file.
type FileUpload struct {
	FileID string `json:"file_id" validate:"required"`
	URL    string `json:"url" validate:"required"`
	Size   int64  `json:"size"`
}

// FileInfo is the stored metadata for a file.
type FileInfo struct {
	FileID      string `json:"file_id" validate:"required"`
	Filename    string `json:"filename" validate:"required"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
	UploadedAt  string `json:"uploaded_at,omitempty"`
}
