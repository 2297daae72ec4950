// Package console is a line-oriented front end for the storefront. It stands
// in for the out-of-scope rendering layer: it receives immutable snapshots
// through a store subscription and maps exactly one input line to one user
// intent.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"storefront/internal/delivery"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/state"
	"storefront/internal/infra/i18n"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// Params defines the parameters required for the console front end.
type Params struct {
	fx.In

	Store      *store.Store
	Catalog    usecase.CatalogUsecase
	Cart       usecase.CartUsecase
	Navigation usecase.NavigationUsecase
	Checkout   usecase.CheckoutUsecase
	Payment    usecase.PaymentUsecase
	Profile    usecase.ProfileUsecase
	Delivery   usecase.DeliveryUsecase
	Logger     *slog.Logger
}

type console struct {
	appStore   *store.Store
	catalog    usecase.CatalogUsecase
	cart       usecase.CartUsecase
	navigation usecase.NavigationUsecase
	checkout   usecase.CheckoutUsecase
	payment    usecase.PaymentUsecase
	profile    usecase.ProfileUsecase
	delivery   usecase.DeliveryUsecase
	logger     *slog.Logger

	in  io.Reader
	out io.Writer
}

// NewConsole is the constructor for the console front end. It subscribes to
// the store so every applied intent re-renders the status line.
func NewConsole(params Params) delivery.Delivery {
	c := &console{
		appStore:   params.Store,
		catalog:    params.Catalog,
		cart:       params.Cart,
		navigation: params.Navigation,
		checkout:   params.Checkout,
		payment:    params.Payment,
		profile:    params.Profile,
		delivery:   params.Delivery,
		logger:     params.Logger,
		in:         os.Stdin,
		out:        os.Stdout,
	}

	params.Store.Subscribe(c.render)

	return c
}

// Serve reads one command per line until EOF or shutdown.
func (c *console) Serve(ctx context.Context) error {
	fmt.Fprintln(c.out, `storefront console, type "help" for commands`)
	c.render(c.appStore.Snapshot())

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			c.dispatch(strings.Fields(line))
		}
	}
}

// render prints a one-line summary of the fresh snapshot.
func (c *console) render(s *state.State) {
	quote := c.cart.Quote()
	title := i18n.Lookup("screen."+s.Nav.Active.String(), s.Language)
	fmt.Fprintf(c.out, "[%s] %s | %s %d | %s ₽%d | ★%d\n",
		s.Nav.Active, title,
		i18n.Lookup("screen.cart", s.Language), s.Cart.Count(),
		i18n.Lookup("cart.total", s.Language), quote.Total,
		s.User.LoyaltyPoints,
	)
}

func (c *console) dispatch(args []string) {
	if len(args) == 0 {
		return
	}

	var err error
	switch cmd := args[0]; cmd {
	case "help":
		c.printHelp()
	case "menu":
		category := ""
		if len(args) > 1 {
			category = args[1]
			err = c.catalog.SelectCategory(category)
		}
		if err == nil {
			c.printProducts(c.catalog.ListByCategory(category))
		}
	case "search":
		c.printProducts(c.catalog.Search(strings.Join(args[1:], " ")))
	case "promos":
		for _, promo := range c.catalog.ListPromotions() {
			lang := c.appStore.Snapshot().Language
			fmt.Fprintf(c.out, "  %s %s (%s)\n", promo.ID, promo.Title.In(lang), promo.DiscountTag)
		}
	case "restaurants":
		for _, restaurant := range c.catalog.ListRestaurants() {
			fmt.Fprintf(c.out, "  %s %s, %s (%s)\n", restaurant.ID, restaurant.Name, restaurant.Address, restaurant.Status)
		}
	case "open":
		err = c.navigation.OpenProduct(arg(args, 1))
	case "close":
		c.navigation.CloseProduct()
	case "add":
		quantity := 1
		if len(args) > 2 {
			quantity, _ = strconv.Atoi(args[2])
		}
		c.cart.AddItem(arg(args, 1), quantity)
	case "qty":
		delta, _ := strconv.Atoi(arg(args, 2))
		c.cart.UpdateQuantity(arg(args, 1), delta)
	case "remove":
		c.cart.RemoveItem(arg(args, 1))
	case "cart":
		c.printCart()
	case "promo":
		err = c.cart.ApplyPromo(arg(args, 1))
	case "unpromo":
		c.cart.RemovePromo()
	case "goto":
		err = c.navigation.GoTo(entity.Screen(arg(args, 1)))
	case "back":
		c.navigation.Back()
	case "submit":
		err = c.checkout.Submit()
	case "abort":
		if !c.checkout.CancelSubmission() {
			fmt.Fprintln(c.out, "  nothing to abort")
		}
	case "cards":
		for _, card := range c.payment.ListCards() {
			fmt.Fprintf(c.out, "  %s %s •••• %s %s\n", card.ID, card.Brand, card.Last4, card.Expiry)
		}
	case "selectcard":
		err = c.payment.SelectCard(arg(args, 1))
	case "delcard":
		err = c.payment.DeleteCard(arg(args, 1))
	case "method":
		err = c.payment.SetMethod(entity.PaymentMethod(arg(args, 1)))
	case "lang":
		err = c.profile.SetLanguage(arg(args, 1))
	case "orders":
		for _, order := range c.profile.Orders() {
			fmt.Fprintf(c.out, "  %s ₽%d %s (%s)\n", order.DateLabel, order.Total, strings.Join(order.Items, ", "), order.Status)
		}
	case "deliver":
		err = c.delivery.SetType(entity.DeliveryType(arg(args, 1)))
	case "location":
		if len(args) > 1 {
			err = c.delivery.Save(&usecase.SaveDeliveryInput{
				Location: strings.Join(args[1:], " "),
				Type:     c.delivery.Context().Type.String(),
				Time:     c.delivery.Context().Time,
			})
		} else {
			context := c.delivery.Context()
			fmt.Fprintf(c.out, "  %s (%s, %s)\n", context.Location, context.Type, context.Time)
		}
	default:
		fmt.Fprintf(c.out, "  unknown command %q\n", cmd)
	}

	if err != nil {
		c.printError(err)
	}
}

func (c *console) printProducts(products []*entity.Product) {
	lang := c.appStore.Snapshot().Language
	for _, product := range products {
		fmt.Fprintf(c.out, "  %s %s ₽%d (%d kcal)\n", product.ID, product.Name.In(lang), product.Price, product.Calories)
	}
}

func (c *console) printCart() {
	snapshot := c.appStore.Snapshot()
	for _, line := range snapshot.Cart {
		fmt.Fprintf(c.out, "  %dx %s ₽%d\n", line.Quantity, line.Product.Name.In(snapshot.Language), line.Product.Price*line.Quantity)
	}

	quote := c.cart.Quote()
	lang := snapshot.Language
	fmt.Fprintf(c.out, "  %s ₽%d, %s ₽%d, %s ₽%d",
		i18n.Lookup("cart.subtotal", lang), quote.Subtotal,
		i18n.Lookup("cart.delivery", lang), quote.DeliveryFee,
		i18n.Lookup("cart.service", lang), quote.ServiceFee,
	)
	if quote.Discount > 0 {
		fmt.Fprintf(c.out, ", %s -₽%d", i18n.Lookup("cart.discount", lang), quote.Discount)
	}
	fmt.Fprintf(c.out, "\n  %s ₽%d (+%d %s)\n",
		i18n.Lookup("cart.total", lang), quote.Total,
		quote.LoyaltyAccrual, i18n.Lookup("cart.points", lang),
	)
}

// printError shows guard failures as blocked actions, never as crashes.
func (c *console) printError(err error) {
	var appErr domainerrors.AppError
	if domainerrors.AsAppError(err, &appErr) {
		fmt.Fprintf(c.out, "  blocked: %s (%s)\n", appErr.Message(), appErr.ErrorCode())

		return
	}

	fmt.Fprintf(c.out, "  error: %v\n", err)
}

func (c *console) printHelp() {
	fmt.Fprintln(c.out, `  menu [category] | search <q> | promos | restaurants
  open <id> | close | add <id> [qty] | qty <id> <delta> | remove <id>
  cart | promo <code> | unpromo
  goto <screen> | back | submit | abort
  cards | selectcard <id> | delcard <id> | method card|cash
  lang <tag> | orders | deliver delivery|pickup | location [text]`)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
