package latex

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// VerifyPDF checks that compiled bytes parse as a PDF with at least
// one page. Catches the cases where the compiler exits zero but emits
// a truncated file.
func VerifyPDF(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty artifact")
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("parse artifact: %w", err)
	}
	if reader.NumPage() < 1 {
		return fmt.Errorf("artifact has no pages")
	}
	return nil
}
