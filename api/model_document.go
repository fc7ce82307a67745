package api

// TextExtraction holds text pulled out of a document.
type TextExtraction struct {
	Text      string      `json:"text" validate:"required"`
	Metadata  interface{} `json:"metadata,omitempty"`
	PageCount int         `json:"page_count,omitempty"`
}

// TableExtraction holds tables pulled out of a document.
type TableExtraction struct {
	Tables     []interface{} `json:"tables"`
	TableCount int           `json:"table_count"`
}

// ImageExtraction holds images pulled out of a document.
type ImageExtraction struct {
	Images     []string `json:"images"`
	ImageCount int      `json:"image_count"`
}

// OCRResult is the text recognized in a scanned image.
type OCRResult struct {
	Text       string  `json:"text" validate:"required"`
	Confidence float64 `json:"confidence,omitempty"`
	Language   string  `json:"language,omitempty"`
}
