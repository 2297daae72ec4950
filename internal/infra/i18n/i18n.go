// Package i18n holds the localization table for the three storefront
// languages and normalizes arbitrary language input to one of them.
package i18n

import (
	"golang.org/x/text/language"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// matcher resolves arbitrary BCP-47 input against the supported set.
// Russian first: it is the fallback and the reference locale.
var matcher = language.NewMatcher([]language.Tag{
	language.Russian,
	language.English,
	language.Uzbek,
})

var tagToLanguage = map[language.Tag]entity.Language{
	language.Russian: entity.LanguageRU,
	language.English: entity.LanguageEN,
	language.Uzbek:   entity.LanguageUZ,
}

// ParseLanguage normalizes input such as "en-US" or "uz_UZ" to a supported
// language. Unparseable input is rejected rather than silently mapped to
// the fallback.
func ParseLanguage(input string) (entity.Language, error) {
	tag, err := language.Parse(input)
	if err != nil {
		return "", domainerrors.ErrUnknownLanguage.WrapMessage(input)
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", domainerrors.ErrUnknownLanguage.WrapMessage(input)
	}

	base := []language.Tag{language.Russian, language.English, language.Uzbek}[index]

	return tagToLanguage[base], nil
}

// translations is keyed by label id, then language.
var translations = map[string]entity.LocalizedText{
	"screen.home":           {entity.LanguageRU: "Главная", entity.LanguageEN: "Home", entity.LanguageUZ: "Asosiy"},
	"screen.menu":           {entity.LanguageRU: "Меню", entity.LanguageEN: "Menu", entity.LanguageUZ: "Menyu"},
	"screen.promo":          {entity.LanguageRU: "Акции", entity.LanguageEN: "Promos", entity.LanguageUZ: "Aksiyalar"},
	"screen.restaurants":    {entity.LanguageRU: "Рестораны", entity.LanguageEN: "Restaurants", entity.LanguageUZ: "Restoranlar"},
	"screen.more":           {entity.LanguageRU: "Ещё", entity.LanguageEN: "More", entity.LanguageUZ: "Yana"},
	"screen.cart":           {entity.LanguageRU: "Корзина", entity.LanguageEN: "Cart", entity.LanguageUZ: "Savat"},
	"screen.checkout":       {entity.LanguageRU: "Оформление", entity.LanguageEN: "Checkout", entity.LanguageUZ: "Buyurtma berish"},
	"screen.success":        {entity.LanguageRU: "Ура! Заказ принят", entity.LanguageEN: "Order accepted!", entity.LanguageUZ: "Buyurtma qabul qilindi!"},
	"screen.location":       {entity.LanguageRU: "Адрес и время", entity.LanguageEN: "Address & time", entity.LanguageUZ: "Manzil va vaqt"},
	"screen.payment-manage": {entity.LanguageRU: "Способы оплаты", entity.LanguageEN: "Payment methods", entity.LanguageUZ: "To'lov usullari"},
	"screen.profile-edit":   {entity.LanguageRU: "Профиль", entity.LanguageEN: "Profile", entity.LanguageUZ: "Profil"},
	"screen.search-full":    {entity.LanguageRU: "Поиск", entity.LanguageEN: "Search", entity.LanguageUZ: "Qidiruv"},
	"screen.loyalty":        {entity.LanguageRU: "Бонусы", entity.LanguageEN: "Loyalty", entity.LanguageUZ: "Bonuslar"},

	"cart.subtotal":  {entity.LanguageRU: "Сумма", entity.LanguageEN: "Subtotal", entity.LanguageUZ: "Summa"},
	"cart.delivery":  {entity.LanguageRU: "Доставка", entity.LanguageEN: "Delivery", entity.LanguageUZ: "Yetkazish"},
	"cart.service":   {entity.LanguageRU: "Сервисный сбор", entity.LanguageEN: "Service fee", entity.LanguageUZ: "Xizmat haqi"},
	"cart.discount":  {entity.LanguageRU: "Скидка", entity.LanguageEN: "Discount", entity.LanguageUZ: "Chegirma"},
	"cart.total":     {entity.LanguageRU: "Итого", entity.LanguageEN: "Total", entity.LanguageUZ: "Jami"},
	"cart.points":    {entity.LanguageRU: "Будет начислено", entity.LanguageEN: "Points to earn", entity.LanguageUZ: "Yig'iladigan ballar"},
	"order.success":  {entity.LanguageRU: "Скоро он будет у вас", entity.LanguageEN: "It will be with you soon", entity.LanguageUZ: "Tez orada sizda bo'ladi"},
	"delivery.asap":  {entity.LanguageRU: "Как можно скорее", entity.LanguageEN: "As soon as possible", entity.LanguageUZ: "Imkon qadar tezroq"},
}

// Lookup returns the label variant for the given language. Unknown label ids
// come back as the id itself so a missing key is visible rather than blank.
func Lookup(id string, lang entity.Language) string {
	text, ok := translations[id]
	if !ok {
		return id
	}

	return text.In(lang)
}
