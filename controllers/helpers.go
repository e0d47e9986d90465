package controllers

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID parses the :id route parameter.
func paramID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// requiredForm returns the named form values, or the first missing key.
func requiredForm(ctx *gin.Context, keys ...string) (map[string]string, string) {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		v, ok := ctx.GetPostForm(key)
		if !ok {
			return nil, key
		}
		values[key] = v
	}
	return values, ""
}

// optionalFile returns the uploaded file for key, or nil when none was sent.
func optionalFile(ctx *gin.Context, key string) *multipart.FileHeader {
	fh, err := ctx.FormFile(key)
	if err != nil {
		return nil
	}
	return fh
}
