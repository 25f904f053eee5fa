package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/common"
	"github.com/okempf/boardbatch/internal/ingest"
)

// createBatch handles POST /api/v1/batches. Multipart form: "orders" files
// (required) and "labels" files (optional). With ?async=true the batch is
// queued and the response carries only the id and status.
func (s *Server) createBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "invalid multipart form",
			"details":  err.Error(),
			"expected": "multipart upload with 'orders' (and optional 'labels') PDF files",
		})
		return
	}

	orders, err := readUploads(form.File["orders"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reading order uploads", "details": err.Error()})
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidInput.Error(), "details": "at least one order PDF is required"})
		return
	}
	labels, err := readUploads(form.File["labels"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reading label uploads", "details": err.Error()})
		return
	}

	async := c.Query("async") == "true"
	b := s.newBatch(c.Request.Context(), orders, labels, async)

	if async {
		c.JSON(http.StatusAccepted, gin.H{"batch_id": b.ID, "status": b.Status})
		return
	}
	if b.Status == constants.BatchStatusFailed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"batch_id": b.ID, "status": b.Status, "error": b.Error})
		return
	}
	c.JSON(http.StatusOK, s.batchSummary(b))
}

// getBatch handles GET /api/v1/batches/:id.
func (s *Server) getBatch(c *gin.Context) {
	b, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.batchSummary(b))
}

// getOrders handles GET /api/v1/batches/:id/orders, returning the full
// pre-expansion order table.
func (s *Server) getOrders(c *gin.Context) {
	b, ok := s.lookup(c)
	if !ok {
		return
	}
	if b.Result == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "batch not finished", "status": b.Status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"batch_id": b.ID, "orders": b.Result.Orders})
}

// getArtifact handles GET /api/v1/batches/:id/artifacts/:name.
func (s *Server) getArtifact(c *gin.Context) {
	b, ok := s.lookup(c)
	if !ok {
		return
	}
	name := c.Param("name")
	data, found := b.Artifacts[name]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "artifact not found", "name": name})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentTypeFor(name), data)
}

func (s *Server) lookup(c *gin.Context) (*Batch, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch id"})
		return nil, false
	}
	b, ok := s.store.get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": common.ErrNotFound.Error(), "details": "batch not found"})
		return nil, false
	}
	return b, true
}

func (s *Server) batchSummary(b *Batch) gin.H {
	out := gin.H{
		"batch_id":     b.ID,
		"status":       b.Status,
		"submitted_at": b.SubmittedAt,
	}
	if b.Error != "" {
		out["error"] = b.Error
	}
	if b.Result != nil {
		matched := 0
		for i := range b.Result.Orders {
			if b.Result.Orders[i].MatchedLabelID != "" {
				matched++
			}
		}
		artifacts := make([]string, 0, len(b.Artifacts))
		for name := range b.Artifacts {
			artifacts = append(artifacts, name)
		}
		sort.Strings(artifacts)
		out["orders"] = len(b.Result.Orders)
		out["expanded"] = len(b.Result.Expanded)
		out["labels"] = len(b.Result.Labels)
		out["matched"] = matched
		out["artifacts"] = artifacts
	}
	return out
}

// readUploads pulls multipart files into memory, rejecting disallowed
// extensions up front.
func readUploads(files []*multipart.FileHeader) ([]ingest.Upload, error) {
	var out []ingest.Upload
	for _, fh := range files {
		if !ingest.AllowedExt(filepath.Ext(fh.Filename)) {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, ingest.Upload{Name: fh.Filename, Content: content})
	}
	return out, nil
}

func contentTypeFor(name string) string {
	switch filepath.Ext(name) {
	case ".csv":
		return "text/csv"
	case ".zip":
		return "application/zip"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
