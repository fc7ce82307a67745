package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// StorageService exposes the file storage API.
type StorageService service

// UploadFile stores a file under the given name.
func (s *StorageService) UploadFile(ctx context.Context, file []byte, filename string) (api.FileUpload, error) {
	var upload api.FileUpload
	if len(file) == 0 {
		return upload, errRequiredArgument("file")
	}
	if filename == "" {
		return upload, errRequiredArgument("filename")
	}
	err := s.client.postMultipart(ctx, "/storage/upload", file, filename, nil, &upload)
	return upload, err
}

// DownloadFile fetches a stored file's raw bytes.
func (s *StorageService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, errRequiredArgument("fileID")
	}
	return s.client.download(ctx, "/storage/files/"+fileID+"/download")
}

// ListFiles pages through stored files in server order.
func (s *StorageService) ListFiles(ctx context.Context, params *api.ListParams) (api.PaginatedResponse[api.FileInfo], error) {
	var page api.PaginatedResponse[api.FileInfo]
	err := s.client.get(ctx, "/storage/files", params.Values(), &page)
	return page, err
}

// DeleteFile permanently removes a stored file.
func (s *StorageService) DeleteFile(ctx context.Context, fileID string) error {
	if fileID == "" {
		return errRequiredArgument("fileID")
	}
	return s.client.delete(ctx, "/storage/files/"+fileID)
}
