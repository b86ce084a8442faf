package middleware

import (
	"net/http"

	"github.com/sportshoplabs/sportshop-backend/pkg/logger"
)

const (
	subjectHeader  = "User-Id"
	defaultSubject = "u1"
)

// Identity resolves the requesting subject from the User-Id header. Until a
// real authentication layer lands, an absent header maps every caller to the
// shared demo subject.
func Identity(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subjectID := r.Header.Get(subjectHeader)
			if subjectID == "" {
				subjectID = defaultSubject
			}

			ctx := WithSubjectID(r.Context(), subjectID)
			if logg != nil {
				ctx = logg.WithSubjectID(ctx, subjectID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
