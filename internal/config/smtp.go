package config

type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	FromEmail  string `yaml:"from_email"`
	FromName   string `yaml:"from_name"`
	AdminEmail string `yaml:"admin_email"`
	TLS        bool   `yaml:"tls"`
}

// Configured reports whether credentials for the relay are present.
func (c *SMTPConfig) Configured() bool {
	return c != nil && c.Username != "" && c.Password != ""
}

func loadSMTPConfig() *SMTPConfig {
	username := firstEnv("", "EMAIL_USER", "SMTP_USERNAME")
	return &SMTPConfig{
		Host:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:       getEnvAsInt("SMTP_PORT", 587),
		Username:   username,
		Password:   firstEnv("", "EMAIL_PASS", "SMTP_PASSWORD"),
		FromEmail:  getEnv("SMTP_FROM_EMAIL", username),
		FromName:   getEnv("SMTP_FROM_NAME", "Car Booking"),
		AdminEmail: getEnv("ADMIN_EMAIL", ""),
		TLS:        getEnvAsBool("SMTP_TLS", false),
	}
}
