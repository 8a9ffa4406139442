package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/mosaicgrowth/competitor-intel-api/internal/api/handler/router"
	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
	"github.com/mosaicgrowth/competitor-intel-api/internal/usecases/cataloging"
	"github.com/mosaicgrowth/competitor-intel-api/internal/usecases/tracking"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Status(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/test",
			Method:  http.MethodGet,
			Handler: GetStatus(cfg),
		},
	}
}

func Ads(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/meta",
			Method:  http.MethodGet,
			Handler: GetCompetitorAds(service),
		},
		{
			Path:    "/meta/brand",
			Method:  http.MethodGet,
			Handler: GetBrandAds(service),
		},
	}
}

func Products(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/amazon",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
	}
}

func Dashboard(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}
