package application

import (
	"go.uber.org/zap"

	"catalog/internal/catalog/domain"
)

// EventPublisher consomme les événements de domaine drainés après sauvegarde.
// La publication (journalisation, notification externe...) est hors du domaine:
// l'agrégat collecte, la couche application draine et publie.
type EventPublisher interface {
	Publish(events []domain.DomainEvent)
}

// LogPublisher publie les événements dans le journal structuré
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher crée un publisher journalisant
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish journalise chaque événement avec son identité et son horodatage
func (p *LogPublisher) Publish(events []domain.DomainEvent) {
	for _, event := range events {
		p.logger.Info("domain event",
			zap.String("event_id", event.EventID()),
			zap.String("event_type", event.EventType()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}
