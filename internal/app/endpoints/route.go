package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
)

type PlannerService interface {
	SearchRoutes(ctx context.Context, req dto.RouteRequest) (dto.RouteSearchResponse, error)
	ListCities(ctx context.Context) (dto.CityListResponse, error)
}

type RouteEndpoint struct {
	SearchRoutes endpoint.Endpoint
	ListCities   endpoint.Endpoint
}

func MakeRouteEndpoint(service PlannerService) RouteEndpoint {
	return RouteEndpoint{
		SearchRoutes: makeSearchRoutesEndpoint(service),
		ListCities:   makeListCitiesEndpoint(service),
	}
}

func makeSearchRoutesEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RouteRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		routes, err := service.SearchRoutes(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return routes, nil
	}
}

func makeListCitiesEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		cities, err := service.ListCities(ctx)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return cities, nil
	}
}
