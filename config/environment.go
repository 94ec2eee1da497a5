package config

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
}

// Environment derives cookie settings from the configured cookie domain.
func (c *Config) Environment() Environment {
	domain := c.CookieDomain

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	return Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
	}
}
