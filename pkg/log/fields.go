package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldRoute     = "route"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// Codec
	FieldKind     = "kind"
	FieldCount    = "count"
	FieldCategory = "category"

	// Batch export
	FieldBatchID   = "batch_id"
	FieldObjectKey = "object_key"
	FieldBytes     = "bytes"
)
