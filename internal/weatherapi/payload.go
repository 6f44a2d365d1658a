package weatherapi

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"weathergrip/internal/domain"
)

// currentResponse mirrors the subset of /current.json the app displays.
// Pointers distinguish an absent or null field from a legitimate zero value.
type currentResponse struct {
	Location *locationPayload `json:"location" validate:"required"`
	Current  *currentPayload  `json:"current" validate:"required"`
}

type locationPayload struct {
	Name    *string `json:"name" validate:"required"`
	Region  *string `json:"region" validate:"required"`
	Country *string `json:"country" validate:"required"`
}

type conditionPayload struct {
	Text *string `json:"text" validate:"required"`
	Icon *string `json:"icon" validate:"required"`
}

type currentPayload struct {
	LastUpdated *string           `json:"last_updated" validate:"required"`
	Condition   *conditionPayload `json:"condition" validate:"required"`
	TempC       *float64          `json:"temp_c" validate:"required"`
	FeelsLikeC  *float64          `json:"feelslike_c" validate:"required"`
	VisKm       *float64          `json:"vis_km" validate:"required"`
	Humidity    *float64          `json:"humidity" validate:"required"`
	WindKph     *float64          `json:"wind_kph" validate:"required"`
	WindDir     *string           `json:"wind_dir" validate:"required"`
	PressureMb  *float64          `json:"pressure_mb" validate:"required"`
	UV          *float64          `json:"uv" validate:"required"`
	Cloud       *float64          `json:"cloud" validate:"required"`
	PrecipMm    *float64          `json:"precip_mm" validate:"required"`
	DewPointC   *float64          `json:"dewpoint_c" validate:"required"`
}

// errorResponse is the body WeatherAPI sends with 4xx statuses
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so log lines match the upstream document
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toSnapshot checks that every displayed field is present and normalizes the payload
func toSnapshot(v *validator.Validate, resp *currentResponse) (domain.WeatherSnapshot, error) {
	if err := v.Struct(resp); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, trimNamespace(fe.Namespace()))
			}
			return domain.WeatherSnapshot{}, fmt.Errorf("%w: missing %s", domain.ErrMalformedResponse, strings.Join(missing, ", "))
		}
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	icon, err := ResolveIconURL(*resp.Current.Condition.Icon)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}

	loc, cur := resp.Location, resp.Current
	return domain.WeatherSnapshot{
		Name:          *loc.Name,
		Region:        *loc.Region,
		Country:       *loc.Country,
		LastUpdated:   *cur.LastUpdated,
		ConditionText: *cur.Condition.Text,
		ConditionIcon: icon,
		TempC:         *cur.TempC,
		FeelsLikeC:    *cur.FeelsLikeC,
		VisKm:         *cur.VisKm,
		Humidity:      *cur.Humidity,
		WindKph:       *cur.WindKph,
		WindDir:       *cur.WindDir,
		PressureMb:    *cur.PressureMb,
		UV:            *cur.UV,
		Cloud:         *cur.Cloud,
		PrecipMm:      *cur.PrecipMm,
		DewPointC:     *cur.DewPointC,
	}, nil
}

// trimNamespace drops the root struct name: "currentResponse.current.humidity" -> "current.humidity"
func trimNamespace(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// ResolveIconURL turns the protocol-relative icon reference into an absolute https URL
func ResolveIconURL(icon string) (string, error) {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return "", fmt.Errorf("%w: empty condition icon", domain.ErrMalformedResponse)
	}

	u, err := url.Parse(icon)
	if err != nil {
		return "", fmt.Errorf("%w: condition icon %q: %v", domain.ErrMalformedResponse, icon, err)
	}

	switch {
	case u.Scheme == "" && u.Host != "":
		u.Scheme = "https"
	case (u.Scheme == "http" || u.Scheme == "https") && u.Host != "":
		u.Scheme = "https"
	default:
		return "", fmt.Errorf("%w: condition icon %q is not a network reference", domain.ErrMalformedResponse, icon)
	}

	return u.String(), nil
}
