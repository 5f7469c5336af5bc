package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ukozhakova/Django2021-Endterm/internal/audit"
	"github.com/ukozhakova/Django2021-Endterm/internal/auth"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
	"github.com/ukozhakova/Django2021-Endterm/internal/validators"
)

// Profiles are looked up by the principal, never by a path id: a user can
// only ever see or change their own.

func GetProfile(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	profile, err := repos.ProfileForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile reads a multipart form with partial semantics: info, dob
// (2006-01-02), gender and an optional avatar file.
func UpdateProfile(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	profile, err := repos.ProfileForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	errs := validators.Errors{}

	if info, ok := c.GetPostForm("info"); ok {
		profile.Info = info
	}
	if raw, ok := c.GetPostForm("dob"); ok {
		if raw == "" {
			profile.DOB = nil
		} else if dob, err := time.Parse("2006-01-02", raw); err != nil {
			errs["dob"] = "Date has wrong format. Use YYYY-MM-DD"
		} else {
			profile.DOB = &dob
		}
	}
	if gender, ok := c.GetPostForm("gender"); ok {
		if gender != models.GenderMale && gender != models.GenderFemale {
			errs["gender"] = "Gender must be M or F"
		} else {
			profile.Gender = gender
		}
	}

	file, fileErr := c.FormFile("avatar")
	if fileErr == nil {
		if imageErrs := validators.Image(file.Filename, file.Size); imageErrs != nil {
			errs["avatar"] = imageErrs["image"]
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if fileErr == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer src.Close()
		profile.Avatar, err = Store.Save(c.Request.Context(), "avatars", file.Filename, src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	profile.User = nil
	if err := repos.SaveProfile(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := repos.ProfileForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve profile"})
		return
	}

	audit.Record("profile", profile.ID, actor(c), "update")
	c.JSON(http.StatusOK, updated)
}
