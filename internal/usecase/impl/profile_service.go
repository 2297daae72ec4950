package impl

import (
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/state"
	"storefront/internal/infra/i18n"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	appStore *store.Store
	validate *validator.Validate
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	appStore *store.Store,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		appStore: appStore,
		validate: validator.New(),
		logger:   logger,
	}
}

// Get returns the current profile.
func (srv *profileService) Get() entity.UserProfile {
	return srv.appStore.Snapshot().User
}

// Update applies the provided fields after validation. Nil fields are left
// unchanged.
func (srv *profileService) Update(input *usecase.UpdateProfileInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.appStore.Apply("profile.update", func(s *state.State) {
		if input.Name != nil {
			s.User.Name = *input.Name
		}
		if input.Email != nil {
			s.User.Email = *input.Email
		}
		if input.Phone != nil {
			s.User.Phone = *input.Phone
		}
		if input.Avatar != nil {
			s.User.Avatar = *input.Avatar
		}
	})
	srv.logger.Info("profile updated")

	return nil
}

// SetNotification flips one notification toggle.
func (srv *profileService) SetNotification(kind entity.NotificationKind, enabled bool) error {
	if !kind.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, kind.String())
	}

	srv.appStore.Apply("profile.set-notification", func(s *state.State) {
		switch kind {
		case entity.NotifyOrderStatus:
			s.Notifications.OrderStatus = enabled
		case entity.NotifyDeliveryUpdates:
			s.Notifications.DeliveryUpdates = enabled
		case entity.NotifyPromotions:
			s.Notifications.Promotions = enabled
		}
	})

	return nil
}

// SetLanguage switches the display language. Input is normalized through
// the i18n matcher, so regional forms like "en-US" select "en".
func (srv *profileService) SetLanguage(input string) error {
	lang, err := i18n.ParseLanguage(input)
	if err != nil {
		return err
	}

	srv.appStore.Apply("profile.set-language", func(s *state.State) {
		s.Language = lang
	})
	srv.logger.Info("language changed", "language", lang)

	return nil
}

// Orders returns the order history, newest first.
func (srv *profileService) Orders() []entity.Order {
	return srv.appStore.Snapshot().Orders
}
