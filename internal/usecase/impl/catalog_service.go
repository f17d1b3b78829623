package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "sitd/internal/delivery/context"
	"sitd/internal/domain/entity"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/domain/repository"
	"sitd/internal/domain/service"
	"sitd/internal/usecase"
)

const (
	maxMerchantNameLength = 120
	maxEventTitleLength   = 160
)

// catalogService implements MerchantUsecase and EventUsecase.
type catalogService struct {
	txManager    repository.TransactionManager
	merchantRepo repository.MerchantRepository
	eventRepo    repository.EventRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for the merchant and event usecases, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MerchantRepo repository.MerchantRepository
	EventRepo    repository.EventRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

func newCatalogService(params CatalogServiceParams) *catalogService {
	return &catalogService{
		txManager:    params.TxManager,
		merchantRepo: params.MerchantRepo,
		eventRepo:    params.EventRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

// NewMerchantService is the constructor for the merchant usecase.
func NewMerchantService(params CatalogServiceParams) usecase.MerchantUsecase {
	return newCatalogService(params)
}

// NewEventService is the constructor for the event usecase.
func NewEventService(params CatalogServiceParams) usecase.EventUsecase {
	return newCatalogService(params)
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) CreateMerchant(ctx context.Context, input *usecase.CreateMerchantInput) (*entity.Merchant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > maxMerchantNameLength {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name must be 1 to 120 characters"))
	}

	merchant := &entity.Merchant{
		Name:        name,
		Description: input.Description,
	}

	if err := srv.merchantRepo.Create(ctx, merchant); err != nil {
		srv.log(ctx).Error("Failed to create merchant", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create merchant")
	}

	srv.log(ctx).Info("Merchant created", slog.Int64("merchantID", merchant.ID))

	return merchant, nil
}

func (srv *catalogService) GetMerchant(ctx context.Context, id int64) (*entity.Merchant, error) {
	merchant, err := srv.merchantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrMerchantNotFound, "merchant %d", id)
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	return merchant, nil
}

func (srv *catalogService) ListMerchants(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Merchant], error) {
	page = page.Normalize()

	merchants, total, err := srv.merchantRepo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	return &entity.Page[*entity.Merchant]{
		Items:    merchants,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

func (srv *catalogService) MerchantQRCode(ctx context.Context, id int64) ([]byte, error) {
	merchant, err := srv.GetMerchant(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateMerchantQR(merchant.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate merchant QR code", slog.Int64("merchantID", id), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

func (srv *catalogService) ResolveMerchantQR(ctx context.Context, qrData string) (*entity.Merchant, error) {
	id, err := srv.qrService.ParseMerchantQR(qrData)
	if err != nil {
		srv.log(ctx).Info("Rejected QR data", slog.String("data", qrData), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("data is not a merchant link"))
	}

	return srv.GetMerchant(ctx, id)
}

// CreateEvent checks the referenced merchant and inserts in one transaction, so a
// merchant cannot disappear between the check and the insert.
func (srv *catalogService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > maxEventTitleLength {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("title must be 1 to 160 characters"))
	}

	event := &entity.Event{
		MerchantID: input.MerchantID,
		Title:      title,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
	}
	if !event.HasValidWindow() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("starts_at must not be after ends_at"))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if event.MerchantID != nil {
			_, err := repoFactory.NewMerchantRepository().FindByID(ctx, *event.MerchantID)
			if errors.Is(err, repository.ErrMerchantNotFound) {
				return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("merchant does not exist"))
			}
			if err != nil {
				return errors.Wrap(err, "failed to check event merchant")
			}
		}

		return repoFactory.NewEventRepository().Create(ctx, event)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create event", slog.String("title", title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Int64("eventID", event.ID))

	return event, nil
}

func (srv *catalogService) ListEvents(ctx context.Context, input *usecase.ListEventsInput) (*entity.Page[*entity.Event], error) {
	page := input.Page.Normalize()

	events, total, err := srv.eventRepo.List(ctx, repository.EventFilter{MerchantID: input.MerchantID}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return &entity.Page[*entity.Event]{
		Items:    events,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}
