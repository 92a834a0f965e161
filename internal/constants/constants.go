package constants

// Значения настроек нового курьера до первой правки профиля.
// Налоговый коэффициент 1 означает «вычет не настроен»:
// расчёт работает, но ничего не удерживает.
const (
	DefaultCurrency         = "RUB"
	DefaultTaxCoefficient   = 1.0
	DefaultLeaderboardLimit = 5
)

// DateLayout — формат дат смен во всём приложении (ключ смены).
const DateLayout = "2006-01-02"
