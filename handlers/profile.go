package handlers

import (
	"context"
	"net/http"
	"strings"

	"legali_app_go/logger"
	"legali_app_go/middleware"
	"legali_app_go/models"
	"legali_app_go/services"
	"legali_app_go/services/session"
	"legali_app_go/services/wizard"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetProfileHandler returns the signed-in user's profile, cache first
func GetProfileHandler(c echo.Context) error {
	store := middleware.GetSessionStore(c)

	if user, ok := store.CachedProfile(); ok {
		return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
	}

	user, err := DataSource.GetProfile(c.Request().Context(), store)
	if err != nil {
		return respondError(c, err)
	}
	store.CacheProfile(*user)
	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

// UpdateProfileHandler validates and applies a profile edit, with an optional picture upload
func UpdateProfileHandler(c echo.Context) error {
	store := middleware.GetSessionStore(c)
	ctx := c.Request().Context()

	var update models.ProfileUpdate
	multipart := strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
	if multipart {
		update.FirstName = c.FormValue("first_name")
		update.LastName = c.FormValue("last_name")
		update.Region = c.FormValue("region")
	} else if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	// the picture URL only comes from an upload
	update.ProfilePictureURL = nil

	update = services.NormalizeProfileUpdate(update)
	if err := services.ValidateProfileUpdate(update); err != nil {
		return respondError(c, err)
	}

	previousPicture := currentPictureURL(store)
	var uploadedKey string

	if multipart {
		if fileHeader, err := c.FormFile("profile_picture"); err == nil {
			mimeType, err := services.ValidateProfilePicture(fileHeader)
			if err != nil {
				return respondError(c, wizard.ValidationErrors{"profile_picture": err.Error()})
			}

			src, err := fileHeader.Open()
			if err != nil {
				return respondError(c, err)
			}
			defer src.Close()

			key := services.GenerateProfilePictureKey(store.UserID, fileHeader.Filename)
			result, err := services.Storage.UploadReader(ctx, src, key, mimeType, fileHeader.Size)
			if err != nil {
				return respondError(c, err)
			}
			update.ProfilePictureURL = &result.URL
			uploadedKey = key
			logger.L().Info("profile picture stored", zap.String("user_id", store.UserID), zap.String("key", key))
		}
	}

	user, err := DataSource.UpdateProfile(ctx, store, update)
	if err != nil {
		if uploadedKey != "" {
			deleteStoredPicture(ctx, uploadedKey)
		}
		return respondError(c, err)
	}
	store.CacheProfile(*user)

	if uploadedKey != "" && previousPicture != "" {
		if key, ok := services.StorageKeyFromURL(services.Storage, previousPicture); ok && key != uploadedKey && strings.HasPrefix(key, "profiles/"+store.UserID+"/") {
			deleteStoredPicture(ctx, key)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":    user,
		"message": "Profile updated successfully",
	})
}

// currentPictureURL is the picture the session shows before this edit
func currentPictureURL(store *session.Session) string {
	if overlay, ok := store.ProfileOverlay(); ok && overlay.ProfilePictureURL != nil {
		return *overlay.ProfilePictureURL
	}
	if user, ok := store.CachedProfile(); ok && user.ProfilePictureURL != nil {
		return *user.ProfilePictureURL
	}
	return ""
}

func deleteStoredPicture(ctx context.Context, key string) {
	if err := services.Storage.Delete(ctx, key); err != nil {
		logger.L().Warn("failed to delete profile picture", zap.String("key", key), zap.Error(err))
	}
}
