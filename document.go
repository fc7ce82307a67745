package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// DocumentService exposes the document extraction API.
type DocumentService service

// ExtractText pulls text content out of a document. format declares the
// document type (e.g. "pdf", "docx").
func (s *DocumentService) ExtractText(ctx context.Context, file []byte, format string) (api.TextExtraction, error) {
	var extraction api.TextExtraction
	if len(file) == 0 {
		return extraction, errRequiredArgument("file")
	}
	if format == "" {
		return extraction, errRequiredArgument("format")
	}
	err := s.client.postMultipart(ctx, "/document/extract/text", file, "document", map[string]string{"format": format}, &extraction)
	return extraction, err
}

// ExtractTables pulls tabular data out of a document.
func (s *DocumentService) ExtractTables(ctx context.Context, file []byte) (api.TableExtraction, error) {
	var extraction api.TableExtraction
	if len(file) == 0 {
		return extraction, errRequiredArgument("file")
	}
	err := s.client.postMultipart(ctx, "/document/extract/tables", file, "document", nil, &extraction)
	return extraction, err
}

// ExtractImages pulls embedded images out of a document.
func (s *DocumentService) ExtractImages(ctx context.Context, file []byte) (api.ImageExtraction, error) {
	var extraction api.ImageExtraction
	if len(file) == 0 {
		return extraction, errRequiredArgument("file")
	}
	err := s.client.postMultipart(ctx, "/document/extract/images", file, "document", nil, &extraction)
	return extraction, err
}

// OCR recognizes text in a scanned image. language is an optional hint;
// empty lets the platform detect it.
func (s *DocumentService) OCR(ctx context.Context, file []byte, language string) (api.OCRResult, error) {
	var result api.OCRResult
	if len(file) == 0 {
		return result, errRequiredArgument("file")
	}
	fields := map[string]string{}
	if language != "" {
		fields["language"] = language
	}
	err := s.client.postMultipart(ctx, "/document/ocr", file, "image", fields, &result)
	return result, err
}
