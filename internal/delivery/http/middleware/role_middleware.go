package middleware

import (
	"net/http"

	"hms-backend/internal/domain/entity"
	"hms-backend/pkg/response"
)

// RequireRole creates a middleware that checks if the staff member holds
// any of the allowed roles. The role is read from context (set by
// AuthMiddleware from JWT claims), so no database lookup happens here.
func RequireRole(allowedRoles ...entity.StaffRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if entity.StaffRole(role) == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequireTherapist is a convenience middleware for therapist-only endpoints
func RequireTherapist(next http.Handler) http.Handler {
	return RequireRole(entity.RoleTherapist)(next)
}

// RequirePharmacist is a convenience middleware for pharmacist-only endpoints
func RequirePharmacist(next http.Handler) http.Handler {
	return RequireRole(entity.RolePharmacist)(next)
}

// RequireTechnician is a convenience middleware for technician-only endpoints
func RequireTechnician(next http.Handler) http.Handler {
	return RequireRole(entity.RoleTechnician)(next)
}

// RequireFrontDesk covers the staff who run registration and admission:
// receptionists and admins.
func RequireFrontDesk(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleReceptionist)(next)
}

// RequireClinical covers staff with access to clinical records.
func RequireClinical(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse, entity.RoleTherapist)(next)
}
