package services

import (
	"auth-service/pkg/metrics"
)

func incrementAccountsRegistered() {
	metrics.AccountsRegistered.Inc()
}

func incrementLoginsSucceeded() {
	metrics.LoginsSucceeded.Inc()
}

func incrementLoginsFailed() {
	metrics.LoginsFailed.Inc()
}

func incrementTokensIssued() {
	metrics.TokensIssued.Inc()
}

func incrementTokenVerifications() {
	metrics.TokenVerificationsTotal.Inc()
}

func incrementTokenVerificationsFailed() {
	metrics.TokenVerificationsFailed.Inc()
}
