package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/devid-service/internal/domain"
	"github.com/weiawesome/wes-io-live/devid-service/internal/generator"
	"github.com/weiawesome/wes-io-live/devid-service/internal/identifier"
	"github.com/weiawesome/wes-io-live/devid-service/internal/service"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/log"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/response"
)

// Handler handles HTTP requests for the identifier codec.
type Handler struct {
	codec service.CodecService
}

// NewHandler creates a new HTTP handler.
func NewHandler(codec service.CodecService) *Handler {
	return &Handler{codec: codec}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		imei := api.Group("/imei")
		{
			imei.GET("/:imei/analyze", h.AnalyzeIMEI)
			imei.GET("/:imei/validate", h.ValidateIMEI)
			imei.POST("/generate", h.GenerateIMEI)
			imei.POST("/batch", h.GenerateBatch)
		}

		batches := api.Group("/batches")
		{
			batches.POST("", h.ExportBatch)
			batches.GET("", h.ListBatches)
			batches.GET("/:id", h.GetBatch)
			batches.GET("/:id/download", h.DownloadBatch)
		}

		api.GET("/imsi/:imsi/decode", h.DecodeIMSI)

		iccid := api.Group("/iccid")
		{
			iccid.GET("/:iccid/decode", h.DecodeICCID)
			iccid.GET("/:iccid/validate", h.ValidateICCID)
			iccid.POST("/generate", h.GenerateICCID)
		}
	}
}

// AnalyzeIMEI decodes an IMEI into its fields. A checksum mismatch is
// still a 200 with checksum_valid=false.
func (h *Handler) AnalyzeIMEI(c *gin.Context) {
	view, err := h.codec.AnalyzeIMEI(c.Param("imei"))
	if err != nil {
		h.decodeError(c, err)
		return
	}
	response.Success(c, view)
}

// ValidateIMEI checks an IMEI's Luhn checksum.
func (h *Handler) ValidateIMEI(c *gin.Context) {
	response.Success(c, h.codec.ValidateIMEI(c.Param("imei")))
}

// GenerateIMEI generates a single IMEI.
func (h *Handler) GenerateIMEI(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	var req domain.GenerateIMEIRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	id := h.codec.GenerateIMEI(req.Manufacturer, req.Model)
	l.Debug().Str(log.FieldKind, string(identifier.KindIMEI)).Str(log.FieldCategory, req.Manufacturer).Msg("identifier generated")
	response.Success(c, domain.IdentifierResponse{ID: id})
}

// GenerateBatch generates IMEIs without storing them.
func (h *Handler) GenerateBatch(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	var req domain.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind batch request")
		response.BadRequest(c, err.Error())
		return
	}

	ids, err := h.codec.GenerateBatch(*req.Count)
	if err != nil {
		h.batchError(c, err, "failed to generate batch")
		return
	}

	response.Success(c, domain.BatchResponse{Count: len(ids), IDs: ids})
}

// ExportBatch generates IMEIs and stores them as a downloadable batch.
func (h *Handler) ExportBatch(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind export batch request")
		response.BadRequest(c, err.Error())
		return
	}

	batch, err := h.codec.ExportBatch(ctx, *req.Count)
	if err != nil {
		h.batchError(c, err, "failed to export batch")
		return
	}

	response.Created(c, batch)
}

// ListBatches lists exported batches with pagination.
func (h *Handler) ListBatches(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.ListBatchesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.codec.ListBatches(ctx, req.Page, req.PageSize)
	if err != nil {
		l.Error().Err(err).Msg("failed to list batches")
		response.InternalError(c, "failed to list batches")
		return
	}

	response.Success(c, result)
}

// GetBatch returns a batch with its identifiers.
func (h *Handler) GetBatch(c *gin.Context) {
	ctx := c.Request.Context()

	batch, err := h.codec.GetBatch(ctx, c.Param("id"))
	if err != nil {
		h.batchError(c, err, "failed to get batch")
		return
	}

	response.Success(c, batch)
}

// DownloadBatch streams the raw newline-separated batch file.
func (h *Handler) DownloadBatch(c *gin.Context) {
	ctx := c.Request.Context()

	batch, rc, err := h.codec.OpenBatch(ctx, c.Param("id"))
	if err != nil {
		h.batchError(c, err, "failed to open batch")
		return
	}
	defer rc.Close()

	response.Attachment(c, batch.ID+".txt", batch.Size, generator.BatchContentType, rc)
}

// DecodeIMSI splits an IMSI into MCC, MNC and MSIN.
func (h *Handler) DecodeIMSI(c *gin.Context) {
	view, err := h.codec.DecodeIMSI(c.Param("imsi"))
	if err != nil {
		h.decodeError(c, err)
		return
	}
	response.Success(c, view)
}

// GenerateICCID generates a single ICCID.
func (h *Handler) GenerateICCID(c *gin.Context) {
	var req domain.GenerateICCIDRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	response.Success(c, domain.IdentifierResponse{ID: h.codec.GenerateICCID(req.Provider)})
}

// DecodeICCID splits an ICCID into provider prefix and serial.
func (h *Handler) DecodeICCID(c *gin.Context) {
	view, err := h.codec.DecodeICCID(c.Param("iccid"))
	if err != nil {
		h.decodeError(c, err)
		return
	}
	response.Success(c, view)
}

// ValidateICCID checks an ICCID's structure.
func (h *Handler) ValidateICCID(c *gin.Context) {
	response.Success(c, h.codec.ValidateICCID(c.Param("iccid")))
}

func (h *Handler) decodeError(c *gin.Context, err error) {
	if errors.Is(err, identifier.ErrLength) {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidLength, err.Error())
		return
	}
	l := log.Ctx(c.Request.Context())
	l.Error().Err(err).Msg("failed to decode identifier")
	response.InternalError(c, "failed to decode identifier")
}

func (h *Handler) batchError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidCount):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidCount, err.Error())
	case errors.Is(err, service.ErrBatchNotFound):
		response.NotFound(c, "batch not found")
	default:
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Msg(msg)
		response.InternalError(c, msg)
	}
}

// bindOptionalJSON binds a JSON body when one is sent. An empty body leaves
// req at its zero value.
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		l := log.Ctx(c.Request.Context())
		l.Warn().Err(err).Msg("failed to bind request")
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}
