package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tarapurtransport/renderer"

	"go.uber.org/zap"

	"tarapurtransport/utils"
)

// PDFRenderer is the slice of the rendering service the handlers need.
// Tests substitute a fake.
type PDFRenderer interface {
	Render(ctx context.Context, html string, opts renderer.Options) ([]byte, error)
}

// servePDF streams the rendered bytes as an attachment named
// <docType>-<documentNumber>.pdf.
func servePDF(w http.ResponseWriter, docType, number string, pdf []byte) {
	filename := fmt.Sprintf("%s-%s.pdf", docType, number)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// writeRenderError keeps failed PDF responses as JSON so clients never parse
// an error page as binary PDF data.
func writeRenderError(w http.ResponseWriter, err error) {
	var rerr *renderer.RenderError
	if errors.As(err, &rerr) {
		switch rerr.Code {
		case renderer.ErrCodeInvalidHTML:
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false, Message: "Invalid document content", Error: rerr.Error(),
			})
			return
		case renderer.ErrCodeRenderTimeout:
			writeJSON(w, http.StatusGatewayTimeout, ApiResponse{
				Success: false, Message: "PDF generation timed out", Error: rerr.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusInternalServerError, ApiResponse{
		Success: false, Message: "Failed to generate PDF", Error: err.Error(),
	})
}

// removeArchivedPDF drops the bucket copy of a document that no longer
// exists, so the archive never outlives the record. Runs detached.
func removeArchivedPDF(logger *zap.Logger, docType, number string) {
	if !utils.R2Configured() {
		return
	}
	name := fmt.Sprintf("%s-%s.pdf", docType, number)
	go func() {
		if err := utils.DeleteFromR2(context.Background(), name); err != nil {
			logger.Warn("pdf archive cleanup failed",
				zap.String("docType", docType),
				zap.String("number", number),
				zap.Error(err))
		}
	}()
}

// archivePDF pushes a copy of the generated document to the R2 bucket when
// one is configured. It runs detached from the request.
func archivePDF(logger *zap.Logger, docType, number string, pdf []byte) {
	if !utils.R2Configured() {
		return
	}
	buf := make([]byte, len(pdf))
	copy(buf, pdf)
	go func() {
		url, err := utils.UploadPDFToR2(context.Background(), buf, fmt.Sprintf("%s-%s.pdf", docType, number))
		if err != nil {
			logger.Warn("pdf archive upload failed",
				zap.String("docType", docType),
				zap.String("number", number),
				zap.Error(err))
			return
		}
		logger.Info("pdf archived", zap.String("url", url))
	}()
}
