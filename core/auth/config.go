package auth

// Auth action modes accepted by Service.Auth.
const (
	ModeLogin  = "login"
	ModeSignup = "signup"
)

// Config holds the navigation destinations used after auth actions.
type Config struct {
	// AuthenticatedURL is where successful signup and login navigate to.
	AuthenticatedURL string `env:"AUTH_AUTHENTICATED_URL" envDefault:"/dashboard"`
	// LandingURL is where logout navigates to.
	LandingURL string `env:"AUTH_LANDING_URL" envDefault:"/"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		AuthenticatedURL: "/dashboard",
		LandingURL:       "/",
	}
}
