package config

import (
	"fmt"
	"passwordless-service/internal/pkg/utils"

	"github.com/spf13/viper"
)

const (
	appIDIndonesia = "id"
	appIDReport    = "report"
)

// appLinksFromEnv builds the bundle table from the deployment variables. The
// "id" bundle shares the default Firebase project, "report" has its own.
func appLinksFromEnv() map[string]AppLinkBundle {
	firebaseKey := utils.GetEnvString("FIREBASE_DYNAMIC_LINK_KEY", "")
	firebaseUrl := utils.GetEnvString("FIREBASE_DYNAMIC_LINK_URL", "")
	baseUrl := utils.GetEnvString("BASE_URL", "")
	appName := utils.GetEnvString("APP_NAME", "Bookbot")

	bundles := map[string]AppLinkBundle{
		defaultAppID: {
			AppName:                 appName,
			BaseUrl:                 baseUrl,
			SubDomain:               utils.GetEnvString("APP_SUB_DOMAIN", ""),
			AndroidPackageName:      utils.GetEnvString("ANDROID_PACKAGE_NAME", ""),
			IOSBundleID:             utils.GetEnvString("IOS_APP_BUNDLE", ""),
			IOSAppStoreID:           utils.GetEnvString("IOS_APP_ID", ""),
			FirebaseDomainUriPrefix: firebaseUrl,
			FirebaseApiKey:          firebaseKey,
		},
		appIDIndonesia: {
			AppName:                 appName,
			BaseUrl:                 baseUrl,
			SubDomain:               utils.GetEnvString("APP_ID_SUB_DOMAIN", ""),
			AndroidPackageName:      utils.GetEnvString("ANDROID_ID_PACKAGE_NAME", ""),
			IOSBundleID:             utils.GetEnvString("IOS_ID_APP_BUNDLE", ""),
			IOSAppStoreID:           utils.GetEnvString("IOS_ID_APP_ID", ""),
			FirebaseDomainUriPrefix: firebaseUrl,
			FirebaseApiKey:          firebaseKey,
		},
		appIDReport: {
			AppName:                 utils.GetEnvString("REPORT_APP_NAME", appName),
			BaseUrl:                 utils.GetEnvString("REPORT_URL", baseUrl),
			SubDomain:               utils.GetEnvString("APP_REPORT_SUB_DOMAIN", ""),
			AndroidPackageName:      utils.GetEnvString("ANDROID_REPORT_PACKAGE_NAME", ""),
			IOSBundleID:             utils.GetEnvString("IOS_REPORT_APP_BUNDLE", ""),
			IOSAppStoreID:           utils.GetEnvString("IOS_REPORT_APP_ID", ""),
			FirebaseDomainUriPrefix: utils.GetEnvString("REPORT_FIREBASE_DYNAMIC_LINK_URL", firebaseUrl),
			FirebaseApiKey:          utils.GetEnvString("REPORT_FIREBASE_DYNAMIC_LINK_KEY", firebaseKey),
		},
	}
	return bundles
}

// LoadAppLinks reads the bundle table from a YAML, JSON or TOML file whose
// top level key is "app_links". Keys are lower-cased by viper.
func LoadAppLinks(path string) (map[string]AppLinkBundle, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read app links file %s: %w", path, err)
	}

	var bundles map[string]AppLinkBundle
	if err := v.UnmarshalKey("app_links", &bundles); err != nil {
		return nil, fmt.Errorf("config: decode app links file %s: %w", path, err)
	}
	if len(bundles) == 0 {
		return nil, fmt.Errorf("config: app links file %s has no app_links entries", path)
	}
	return bundles, nil
}
