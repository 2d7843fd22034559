package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/compare"
	"github.com/rgehrsitz/ctcgo/internal/domain"
)

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// solveFailure maps a solver error to a status code; cancellation is the common case
func (s *Server) solveFailure(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	s.Logger.Error("solve failed", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// normalizeInput resolves regime and mode spellings and fills default components
func normalizeInput(in *domain.SalaryInput) error {
	regime, err := domain.ParseRegimeName(string(in.Regime))
	if err != nil {
		return err
	}
	in.Regime = regime

	mode, err := domain.ParseInputMode(string(in.Mode))
	if err != nil {
		return err
	}
	in.Mode = mode

	if in.Components.IsZero() {
		in.Components = domain.DefaultComponentConfig()
	}
	in.Components = in.Components.MirrorEmployerPF()
	return nil
}

// bindSalary decodes a request body over the default salary input
func bindSalary(c echo.Context) (domain.SalaryInput, error) {
	in := newSalaryInput()
	if err := c.Bind(&in); err != nil {
		return in, err
	}
	if err := normalizeInput(&in); err != nil {
		return in, badRequest(err)
	}
	return in, nil
}

// checkVariant rejects variants the registry does not know
func (s *Server) checkVariant(in domain.SalaryInput) error {
	if _, err := s.Registry.Get(in.Regime, in.Variant); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return nil
}

// checkVariantBoth is checkVariant for endpoints that run both regimes
func (s *Server) checkVariantBoth(in domain.SalaryInput) error {
	for _, r := range []domain.RegimeName{domain.RegimeOld, domain.RegimeNew} {
		if err := s.checkVariant(in.WithRegime(r)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) forward(c echo.Context) error {
	in, err := bindSalary(c)
	if err != nil {
		return err
	}
	b, err := calculation.Recompute(s.Registry, in)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (s *Server) reverse(c echo.Context) error {
	req := reverseRequest{SalaryInput: newSalaryInput()}
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := normalizeInput(&req.SalaryInput); err != nil {
		return badRequest(err)
	}
	if err := s.checkVariant(req.SalaryInput); err != nil {
		return err
	}

	result, err := s.Solver.SolveForCTC(c.Request().Context(), req.TargetMonthly, req.SalaryInput)
	if err != nil {
		return s.solveFailure(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) reverseAcrossRegimes(c echo.Context) error {
	req := reverseRequest{SalaryInput: newSalaryInput()}
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := normalizeInput(&req.SalaryInput); err != nil {
		return badRequest(err)
	}
	if err := s.checkVariantBoth(req.SalaryInput); err != nil {
		return err
	}

	result, err := s.Solver.SolveAcrossRegimes(c.Request().Context(), req.TargetMonthly, req.SalaryInput)
	if err != nil {
		return s.solveFailure(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) compareRegimes(c echo.Context) error {
	in, err := bindSalary(c)
	if err != nil {
		return err
	}
	if err := s.checkVariantBoth(in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.Compare.CompareRegimes(in))
}

func (s *Server) compareOffers(c echo.Context) error {
	req := offersRequest{Base: newSalaryInput()}
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := normalizeInput(&req.Base); err != nil {
		return badRequest(err)
	}

	set, err := s.Compare.CompareOffers(c.Request().Context(), req.Base, req.Offers, compare.CompareOptions{BaseOfferName: req.BaseOffer})
	if err != nil {
		return badRequest(err)
	}
	return c.JSON(http.StatusOK, set)
}

func (s *Server) projectHike(c echo.Context) error {
	req := hikeRequest{Current: newSalaryInput()}
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := normalizeInput(&req.Current); err != nil {
		return badRequest(err)
	}
	if !req.Current.CTC.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, "current ctc must be positive")
	}
	return c.JSON(http.StatusOK, s.Compare.ProjectHike(req.Current, req.Percent))
}

func (s *Server) computeTax(c echo.Context) error {
	var req taxRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	name, err := domain.ParseRegimeName(string(req.Regime))
	if err != nil {
		return badRequest(err)
	}
	regime, err := s.Registry.Get(name, req.Variant)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	result := calculation.ComputeRegimeTax(req.TaxableIncome, regime)
	result = calculation.ApplyRebate(regime, req.TaxableIncome, result)
	return c.JSON(http.StatusOK, taxResponse{Regime: regime.Name, Variant: regime.Variant, TaxResult: result})
}

func (s *Server) listRegimes(c echo.Context) error {
	return c.JSON(http.StatusOK, regimesResponse{
		DefaultVariant: s.Registry.DefaultVariant,
		Variants:       s.Registry.Variants(),
		Regimes:        s.Registry.All(),
	})
}

func (s *Server) listCities(c echo.Context) error {
	cities := calculation.Cities()
	out := make([]cityIndex, 0, len(cities))
	for _, city := range cities {
		idx, _ := calculation.CityIndex(city)
		out = append(out, cityIndex{City: city, Index: idx})
	}
	return c.JSON(http.StatusOK, out)
}
