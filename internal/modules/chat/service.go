// README: Chat pipeline; classify, enrich, route to a handler, assemble the envelope.
package chat

import (
	"context"

	"dreamstate/internal/modules/intent"
)

// PropertyHandler answers questions about a single named property.
type PropertyHandler interface {
	HandlePropertyQuery(ctx context.Context, rec *intent.Record) (Result, error)
}

// DatasetHandler answers aggregate queries over the property dataset.
type DatasetHandler interface {
	HandleDatasetQuery(ctx context.Context, rec *intent.Record) (Result, error)
}

// ReplyGenerator produces the conversational fallback for greetings and
// anything else the structured handlers do not cover. It receives only the
// raw message, never the intent record.
type ReplyGenerator interface {
	GeneralReply(ctx context.Context, message string) (Result, error)
}

// FieldResolver enriches the extracted record with a canonical field tag.
type FieldResolver func(informationToFind *string, inputMessage string) (fieldType, datasetHint string)

// Classifier turns raw text into an intent record.
type Classifier interface {
	Classify(ctx context.Context, message string) (*intent.Record, error)
}

// Service runs the full message pipeline.
type Service struct {
	classifier Classifier
	resolve    FieldResolver
	property   PropertyHandler
	dataset    DatasetHandler
	general    ReplyGenerator
}

// NewService wires the pipeline collaborators.
func NewService(classifier Classifier, resolve FieldResolver, property PropertyHandler, dataset DatasetHandler, general ReplyGenerator) *Service {
	return &Service{
		classifier: classifier,
		resolve:    resolve,
		property:   property,
		dataset:    dataset,
		general:    general,
	}
}

// Process resolves message into a reply envelope. The only error it can
// return is a classification transport failure or a handler failure; every
// extraction-quality problem has already degraded to the "other" intent.
func (s *Service) Process(ctx context.Context, message string) (*Envelope, error) {
	rec, err := s.classifier.Classify(ctx, message)
	if err != nil {
		return nil, err
	}

	fieldType, datasetHint := s.resolve(rec.InformationToFind, rec.InputMessage)
	rec.Enrich(fieldType, datasetHint)

	res, err := s.route(ctx, rec, message)
	if err != nil {
		return nil, err
	}
	return Assemble(res, rec), nil
}

// route is pure dispatch: it selects a handler by intent and performs no
// business logic of its own. Anything outside the known intents falls through
// to the general reply, same as "greeting" and "other".
func (s *Service) route(ctx context.Context, rec *intent.Record, message string) (Result, error) {
	switch rec.Intent {
	case intent.PropertyQuery:
		return s.property.HandlePropertyQuery(ctx, rec)
	case intent.DatasetQuery:
		return s.dataset.HandleDatasetQuery(ctx, rec)
	default:
		return s.general.GeneralReply(ctx, message)
	}
}
