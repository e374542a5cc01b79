// Package metrics provides OpenTelemetry instrumentation exported in Prometheus format.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Provider bundles the meter provider with the private registry it exports to.
// The Go runtime and process collectors share that registry, so one scrape
// returns service and runtime series together.
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *prometheus.Registry
}

// NewProvider creates a Provider. The namespace prefixes the process collector series.
func NewProvider(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()

	runtimeCollectors := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	}
	for _, collector := range runtimeCollectors {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register runtime collector: %w", err)
		}
	}

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	return &Provider{
		meterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)),
		registry:      registry,
	}, nil
}

// Handler serves the registry in Prometheus exposition format. A failing
// collector does not hide the remaining series.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Gatherer exposes the registry for callers that read samples directly.
func (p *Provider) Gatherer() prometheus.Gatherer {
	return p.registry
}

// MeterProvider returns the OpenTelemetry meter provider.
func (p *Provider) MeterProvider() *sdkmetric.MeterProvider {
	return p.meterProvider
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
