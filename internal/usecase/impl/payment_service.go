package impl

import (
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/state"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	appStore *store.Store
	validate *validator.Validate
	logger   *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	appStore *store.Store,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		appStore: appStore,
		validate: validator.New(),
		logger:   logger,
	}
}

// ListCards returns the saved cards in insertion order.
func (srv *paymentService) ListCards() []entity.Card {
	return srv.appStore.Snapshot().Payment.Cards
}

// SelectedCard returns the currently selected card, or nil.
func (srv *paymentService) SelectedCard() *entity.Card {
	return srv.appStore.Snapshot().Payment.SelectedCard()
}

// AddCard validates and saves a new card.
func (srv *paymentService) AddCard(input *usecase.AddCardInput) (*entity.Card, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	card := entity.Card{
		ID:         entity.NewCardID(),
		Last4:      input.Last4,
		Brand:      entity.CardBrand(input.Brand),
		Expiry:     input.Expiry,
		HolderName: input.HolderName,
		Color:      input.Color,
	}

	srv.appStore.Apply("payment.add-card", func(s *state.State) {
		s.Payment.Cards = append(s.Payment.Cards, card)
	})
	srv.logger.Info("card added", "last4", card.Last4, "brand", card.Brand)

	return &card, nil
}

// DeleteCard removes a saved card, clearing the selection when it pointed at
// the deleted card.
func (srv *paymentService) DeleteCard(id string) error {
	if !srv.cardExists(id) {
		return errors.Wrap(domainerrors.ErrCardNotFound, id)
	}

	srv.appStore.Apply("payment.delete-card", func(s *state.State) {
		kept := s.Payment.Cards[:0:0]
		for _, card := range s.Payment.Cards {
			if card.ID != id {
				kept = append(kept, card)
			}
		}
		s.Payment.Cards = kept
		if s.Payment.SelectedCardID == id {
			s.Payment.SelectedCardID = ""
		}
	})

	return nil
}

// SelectCard marks the card as selected and switches the method to card,
// the same coupling the payment screen applies.
func (srv *paymentService) SelectCard(id string) error {
	if !srv.cardExists(id) {
		return errors.Wrap(domainerrors.ErrCardNotFound, id)
	}

	srv.appStore.Apply("payment.select-card", func(s *state.State) {
		s.Payment.SelectedCardID = id
		s.Payment.Method = entity.PaymentCard
	})

	return nil
}

// SetMethod chooses between card and cash.
func (srv *paymentService) SetMethod(method entity.PaymentMethod) error {
	if !method.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, method.String())
	}

	srv.appStore.Apply("payment.set-method", func(s *state.State) {
		s.Payment.Method = method
	})

	return nil
}

func (srv *paymentService) cardExists(id string) bool {
	for _, card := range srv.appStore.Snapshot().Payment.Cards {
		if card.ID == id {
			return true
		}
	}

	return false
}
