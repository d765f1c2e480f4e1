package auditlog

import "context"

// Metadata is the lookup context a command attaches for the audit writer.
type Metadata struct {
	Provider  string
	Handle    string
	ChannelID string

	// Outcome overrides the writer's success/error default, e.g. no_match.
	Outcome string
}

type metadataKey struct{}

// WithMetadata attaches audit metadata to a context. Non-empty fields of meta
// replace those already present.
func WithMetadata(ctx context.Context, meta Metadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	existing, _ := ctx.Value(metadataKey{}).(Metadata)
	merged := Metadata{
		Provider:  pick(meta.Provider, existing.Provider),
		Handle:    pick(meta.Handle, existing.Handle),
		ChannelID: pick(meta.ChannelID, existing.ChannelID),
		Outcome:   pick(meta.Outcome, existing.Outcome),
	}
	return context.WithValue(ctx, metadataKey{}, merged)
}

// MetadataFromContext returns audit metadata stored in the context.
func MetadataFromContext(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	meta, _ := ctx.Value(metadataKey{}).(Metadata)
	return meta
}

func pick(next, fallback string) string {
	if next != "" {
		return next
	}
	return fallback
}
