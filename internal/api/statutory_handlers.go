package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
)

const dateLayout = "2006-01-02"

func (s *Server) pf(c echo.Context) error {
	var req pfRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, calculation.CalculatePF(req.BasicMonthly))
}

func (s *Server) gratuity(c echo.Context) error {
	var req gratuityRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if req.JoinDate == "" && req.ExitDate == "" {
		return c.JSON(http.StatusOK, calculation.CalculateGratuity(req.BasicMonthly, req.Years))
	}

	joined, err := time.Parse(dateLayout, req.JoinDate)
	if err != nil {
		return badRequest(fmt.Errorf("joinDate: %w", err))
	}
	left, err := time.Parse(dateLayout, req.ExitDate)
	if err != nil {
		return badRequest(fmt.Errorf("exitDate: %w", err))
	}
	result, err := calculation.CalculateGratuityForService(req.BasicMonthly, joined, left)
	if err != nil {
		return badRequest(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) hra(c echo.Context) error {
	var req hraRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, calculation.CalculateHRAExemption(req.Basic, req.HRA, req.RentPaid, req.Metro))
}

func (s *Server) bonus(c echo.Context) error {
	var req bonusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, calculation.CalculateBonus(req.Basic, req.CustomPercent))
}

func (s *Server) lta(c echo.Context) error {
	var req ltaRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, calculation.CalculateLTA(req.Received, req.Actual))
}

func (s *Server) costOfLiving(c echo.Context) error {
	var req costOfLivingRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	result, err := calculation.ConvertCostOfLiving(req.Salary, req.FromCity, req.ToCity)
	if err != nil {
		var lookup *domain.LookupError
		if errors.As(err, &lookup) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return badRequest(err)
	}
	return c.JSON(http.StatusOK, result)
}
