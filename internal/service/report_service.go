package service

import (
	"context"
	"fmt"

	"gestorcash/internal/dto"
	"gestorcash/internal/model"
	"gestorcash/internal/repository"
)

// ReportRenderer turns a stored report into a PDF document.
type ReportRenderer func(*model.DailyReport) ([]byte, error)

// ReportMailer delivers a PDF attachment. Enabled reports whether SMTP is
// configured at all.
type ReportMailer interface {
	Enabled() bool
	SendPDF(to, subject, body, fileName string, pdf []byte) error
}

// DailyReportService manages daily summaries plus their PDF export.
type DailyReportService interface {
	Create(ctx context.Context, req dto.DailyReportRequest) (dto.DailyReportResponse, error)
	Get(ctx context.Context, id string) (dto.DailyReportResponse, error)
	List(ctx context.Context, filter dto.ReportFilter) ([]dto.DailyReportResponse, error)
	Update(ctx context.Context, id string, req dto.DailyReportRequest) (dto.DailyReportResponse, error)
	Delete(ctx context.Context, id string) error
	PDF(ctx context.Context, id string) (fileName string, pdf []byte, err error)
	Email(ctx context.Context, id string, req dto.EmailReportRequest) error
}

type dailyReportService struct {
	resource[model.DailyReport, dto.ReportFilter, dto.DailyReportResponse]
	render ReportRenderer
	mailer ReportMailer
}

func NewDailyReportService(repo repository.DailyReportRepository, render ReportRenderer, mailer ReportMailer) DailyReportService {
	return &dailyReportService{
		resource: resource[model.DailyReport, dto.ReportFilter, dto.DailyReportResponse]{repo: repo, view: mapDailyReport},
		render:   render,
		mailer:   mailer,
	}
}

func mapDailyReport(r *model.DailyReport) dto.DailyReportResponse {
	return dto.DailyReportResponse{
		ID:              r.ID,
		StoreID:         r.StoreID,
		Date:            r.Date,
		Customers:       r.Customers,
		SalesCash:       r.SalesCash,
		SalesCard:       r.SalesCard,
		TotalExpenses:   r.TotalExpenses,
		TotalDifference: r.TotalDifference,
		Anomalies:       r.Anomalies,
		GeneratedAt:     r.GeneratedAt,
	}
}

func applyDailyReport(r *model.DailyReport, req dto.DailyReportRequest) {
	r.StoreID = req.StoreID
	r.Date = req.Date
	r.Customers = intOr(req.Customers)
	r.SalesCash = decimalOr(req.SalesCash)
	r.SalesCard = decimalOr(req.SalesCard)
	r.TotalExpenses = decimalOr(req.TotalExpenses)
	r.TotalDifference = decimalOr(req.TotalDifference)
	r.Anomalies = req.Anomalies
}

func (s *dailyReportService) Create(ctx context.Context, req dto.DailyReportRequest) (dto.DailyReportResponse, error) {
	var r model.DailyReport
	applyDailyReport(&r, req)
	return s.create(ctx, &r)
}

func (s *dailyReportService) Get(ctx context.Context, id string) (dto.DailyReportResponse, error) {
	return s.get(ctx, id)
}

func (s *dailyReportService) List(ctx context.Context, filter dto.ReportFilter) ([]dto.DailyReportResponse, error) {
	return s.list(ctx, filter)
}

func (s *dailyReportService) Update(ctx context.Context, id string, req dto.DailyReportRequest) (dto.DailyReportResponse, error) {
	return s.replace(ctx, id, func(r *model.DailyReport) { applyDailyReport(r, req) })
}

func (s *dailyReportService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}

func (s *dailyReportService) PDF(ctx context.Context, id string) (string, []byte, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	pdf, err := s.render(r)
	if err != nil {
		return "", nil, fmt.Errorf("render report %s: %w", id, err)
	}
	return reportFileName(r), pdf, nil
}

// Email renders the report and sends it synchronously. The report must exist
// even when mail is disabled, so a wrong id is still a 404.
func (s *dailyReportService) Email(ctx context.Context, id string, req dto.EmailReportRequest) error {
	name, pdf, err := s.PDF(ctx, id)
	if err != nil {
		return err
	}
	if s.mailer == nil || !s.mailer.Enabled() {
		return ErrMailDisabled
	}
	subject := fmt.Sprintf("Daily report %s", name)
	body := "Attached is the daily cash report you requested."
	if err := s.mailer.SendPDF(req.To, subject, body, name, pdf); err != nil {
		return fmt.Errorf("%w: %v", ErrMailUnavailable, err)
	}
	return nil
}

func reportFileName(r *model.DailyReport) string {
	return fmt.Sprintf("report-%s-%s.pdf", r.StoreID, r.Date)
}
