package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
)

// ValidateConfiguration validates all required configuration items
// before any component is constructed. Missing required keys are fatal;
// optional upstreams only produce warnings so a partial deployment
// (e.g. no image captioning) can still serve the other routes.
func ValidateConfiguration(ctx context.Context) error {
	var missingConfigs []string
	var warnings []string

	// Milvus
	if g.Cfg().MustGet(ctx, "milvus.address", "").String() == "" {
		missingConfigs = append(missingConfigs, "milvus.address")
	}

	// Embedding upstream
	if g.Cfg().MustGet(ctx, "embedding.apiKey", "").String() == "" {
		missingConfigs = append(missingConfigs, "embedding.apiKey")
	}
	if g.Cfg().MustGet(ctx, "embedding.baseURL", "").String() == "" {
		missingConfigs = append(missingConfigs, "embedding.baseURL")
	}
	if g.Cfg().MustGet(ctx, "embedding.model", "").String() == "" {
		missingConfigs = append(missingConfigs, "embedding.model")
	}

	// Chat upstream
	if g.Cfg().MustGet(ctx, "chat.apiKey", "").String() == "" {
		missingConfigs = append(missingConfigs, "chat.apiKey")
	}
	if g.Cfg().MustGet(ctx, "chat.baseURL", "").String() == "" {
		missingConfigs = append(missingConfigs, "chat.baseURL")
	}
	if g.Cfg().MustGet(ctx, "chat.model", "").String() == "" {
		missingConfigs = append(missingConfigs, "chat.model")
	}

	// Object storage
	if g.Cfg().MustGet(ctx, "storage.endpoint", "").String() == "" {
		missingConfigs = append(missingConfigs, "storage.endpoint")
	}
	if g.Cfg().MustGet(ctx, "storage.accessKey", "").String() == "" {
		missingConfigs = append(missingConfigs, "storage.accessKey")
	}
	if g.Cfg().MustGet(ctx, "storage.secretKey", "").String() == "" {
		missingConfigs = append(missingConfigs, "storage.secretKey")
	}
	if g.Cfg().MustGet(ctx, "storage.bucket", "").String() == "" {
		missingConfigs = append(missingConfigs, "storage.bucket")
	}

	// Extraction upstreams are optional.
	if g.Cfg().MustGet(ctx, "ocr.apiKey", "").String() == "" {
		warnings = append(warnings, "ocr.apiKey is not set, /extract-pdf will fail")
	}
	if g.Cfg().MustGet(ctx, "gemini.apiKey", "").String() == "" {
		warnings = append(warnings, "gemini.apiKey is not set, /extract-image will fail")
	}
	if g.Cfg().MustGet(ctx, "workersai.accountId", "").String() == "" ||
		g.Cfg().MustGet(ctx, "workersai.apiToken", "").String() == "" {
		warnings = append(warnings, "workersai credentials are not set, /extract-audio will fail")
	}

	if len(warnings) > 0 {
		g.Log().Warningf(ctx, "Configuration warnings:\n- %s", strings.Join(warnings, "\n- "))
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration items:\n- %s\n\nPlease check your config.yaml file and ensure all required settings are properly configured", strings.Join(missingConfigs, "\n- "))
	}

	g.Log().Info(ctx, "✓ All required configuration items are present")

	return nil
}
