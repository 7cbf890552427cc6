package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
)

const dateLayout = "2006-01-02"

// countAction increments a labelled counter when metrics are configured.
func countAction(vec *prometheus.CounterVec, action string) {
	if vec == nil {
		return
	}
	vec.WithLabelValues(action).Inc()
}

// parseDate turns an optional YYYY-MM-DD string into a UTC date.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, common.Validation("date_of_birth must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}

func parsePrivacy(s string) constants.Privacy {
	if constants.Privacy(s) == constants.PrivacyPrivate {
		return constants.PrivacyPrivate
	}
	return constants.PrivacyPublic
}
