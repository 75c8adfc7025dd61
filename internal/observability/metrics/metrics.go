package metrics

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	HTTPRequestsTotal       metric.Int64Counter
	HTTPRequestDuration     metric.Float64Histogram
	ProviderRequestsTotal   metric.Int64Counter
	ProviderRequestDuration metric.Float64Histogram
	ProviderErrorsTotal     metric.Int64Counter
	ChatSessionsActive      metric.Int64UpDownCounter
	ChatMessagesTotal       metric.Int64Counter
	ItinerariesTotal        metric.Int64Counter
	SubscriptionsTotal      metric.Int64Counter
	DBQueryDurationSeconds  metric.Float64Histogram
	DBQueryErrorsTotal      metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() { // Ensure this only runs once
		meter := otel.GetMeterProvider().Meter("chiapas-guide")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.ProviderRequestsTotal, err = meter.Int64Counter(
			"provider_requests_total",
			metric.WithDescription("Total number of completion requests sent to the language model provider"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create provider_requests_total: %v", err)
		}

		m.ProviderRequestDuration, err = meter.Float64Histogram(
			"provider_request_duration_seconds",
			metric.WithDescription("Duration of language model provider calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create provider_request_duration_seconds: %v", err)
		}

		m.ProviderErrorsTotal, err = meter.Int64Counter(
			"provider_errors_total",
			metric.WithDescription("Total number of failed language model provider calls"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create provider_errors_total: %v", err)
		}

		m.ChatSessionsActive, err = meter.Int64UpDownCounter(
			"chat_sessions_active",
			metric.WithDescription("Number of chat sessions currently held in memory"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_sessions_active: %v", err)
		}

		m.ChatMessagesTotal, err = meter.Int64Counter(
			"chat_messages_total",
			metric.WithDescription("Total number of chat messages appended to transcripts"),
			metric.WithUnit("{message}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_messages_total: %v", err)
		}

		m.ItinerariesTotal, err = meter.Int64Counter(
			"itineraries_generated_total",
			metric.WithDescription("Total number of itineraries generated"),
			metric.WithUnit("{itinerary}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itineraries_generated_total: %v", err)
		}

		m.SubscriptionsTotal, err = meter.Int64Counter(
			"newsletter_subscriptions_total",
			metric.WithDescription("Total number of newsletter subscription requests"),
			metric.WithUnit("{subscription}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create newsletter_subscriptions_total: %v", err)
		}

		m.DBQueryDurationSeconds, err = meter.Float64Histogram(
			"db_query_duration_seconds",
			metric.WithDescription("Duration of database queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_duration_seconds: %v", err)
		}

		m.DBQueryErrorsTotal, err = meter.Int64Counter(
			"db_query_errors_total",
			metric.WithDescription("Total number of database query errors"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_errors_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m // Assign to global variable
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}

// RecordProviderCall records one completion round-trip to the provider.
// It is a no-op when the instruments were never initialized, so services
// stay usable in tests without the observability bootstrap.
func RecordProviderCall(ctx context.Context, route string, d time.Duration, err error) {
	if appMetrics == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("route", route))
	appMetrics.ProviderRequestsTotal.Add(ctx, 1, attrs)
	appMetrics.ProviderRequestDuration.Record(ctx, d.Seconds(), attrs)
	if err != nil {
		appMetrics.ProviderErrorsTotal.Add(ctx, 1, attrs)
	}
}

// RecordChatMessage counts one transcript append by sender.
func RecordChatMessage(ctx context.Context, sender string) {
	if appMetrics == nil {
		return
	}
	appMetrics.ChatMessagesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("sender", sender)))
}

// AddActiveSessions moves the live-session gauge by delta (+1 on create,
// -1 on expiry).
func AddActiveSessions(ctx context.Context, delta int64) {
	if appMetrics == nil {
		return
	}
	appMetrics.ChatSessionsActive.Add(ctx, delta)
}

// RecordItineraryGenerated counts one successful itinerary generation.
func RecordItineraryGenerated(ctx context.Context) {
	if appMetrics == nil {
		return
	}
	appMetrics.ItinerariesTotal.Add(ctx, 1)
}

// RecordSubscription counts one newsletter subscription request.
func RecordSubscription(ctx context.Context) {
	if appMetrics == nil {
		return
	}
	appMetrics.SubscriptionsTotal.Add(ctx, 1)
}

// RecordDBQuery records one repository query duration and error outcome.
func RecordDBQuery(ctx context.Context, operation string, d time.Duration, err error) {
	if appMetrics == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("operation", operation))
	appMetrics.DBQueryDurationSeconds.Record(ctx, d.Seconds(), attrs)
	if err != nil {
		appMetrics.DBQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}
