package handler

import (
	"net/http"

	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/sales-pulse-api/internal/api/handler/router"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/meetings"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reconciling"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/seating"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/targeting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func MagicFormula(aggregator aggregating.Aggregator, resolver targeting.Resolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/magic-formula",
			Method:  http.MethodGet,
			Handler: GetMagicFormula(aggregator),
		},
		{
			Path:    "/v1/magic-formula/targets",
			Method:  http.MethodGet,
			Handler: GetTargets(resolver),
		},
		{
			Path:    "/v1/magic-formula/targets",
			Method:  http.MethodPost,
			Handler: UpdateTargets(resolver),
		},
	}
}

func Meetings(service meetings.Lister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meetings",
			Method:  http.MethodGet,
			Handler: ListMeetings(service),
		},
		{
			Path:    "/v1/meetings/:id/outcome",
			Method:  http.MethodPatch,
			Handler: UpdateMeetingOutcome(service),
		},
	}
}

func Mappings(service reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meetings/mappings",
			Method:  http.MethodGet,
			Handler: GetMappings(service),
		},
		{
			Path:    "/v1/meetings/mappings",
			Method:  http.MethodPost,
			Handler: SaveManualMapping(service),
		},
		{
			Path:    "/v1/meetings/mappings/auto",
			Method:  http.MethodPost,
			Handler: RunAutoMapping(service),
		},
	}
}

func CRMCatalog(service hubspot.HubSpotIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/owners",
			Method:  http.MethodGet,
			Handler: ListOwners(service),
		},
		{
			Path:    "/v1/pipelines",
			Method:  http.MethodGet,
			Handler: ListPipelines(service),
		},
		{
			Path:    "/v1/sequences",
			Method:  http.MethodGet,
			Handler: ListSequences(service),
		},
	}
}

func Deals(service hubspot.HubSpotIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/deals",
			Method:  http.MethodGet,
			Handler: ListDeals(service),
		},
		{
			Path:    "/v1/deals/:id",
			Method:  http.MethodPatch,
			Handler: UpdateDeal(service),
		},
	}
}

func Recordings(service grain.GrainIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/recordings",
			Method:  http.MethodGet,
			Handler: ListRecordings(service),
		},
		{
			Path:    "/v1/recordings/details",
			Method:  http.MethodPost,
			Handler: GetRecordingDetails(service),
		},
	}
}

func Reports(service reporting.Generator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/generate",
			Method:  http.MethodPost,
			Handler: GenerateReport(service),
		},
	}
}

func Seats(service seating.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/seats",
			Method:  http.MethodGet,
			Handler: ListSeats(service),
		},
		{
			Path:    "/v1/seats",
			Method:  http.MethodPost,
			Handler: CreateSeat(service),
		},
		{
			Path:    "/v1/seats/:id",
			Method:  http.MethodGet,
			Handler: GetSeat(service),
		},
		{
			Path:    "/v1/seats/:id",
			Method:  http.MethodPut,
			Handler: UpdateSeat(service),
		},
		{
			Path:    "/v1/seats/auto-map",
			Method:  http.MethodPost,
			Handler: AutoMapSeats(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
