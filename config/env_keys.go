package config

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/slighter12/go-lib/database/postgres"
)

// canonicalizeEnvKey maps an env var name onto the dotted koanf path, reusing the spelling of keys
// already present in the YAML file so POSTGRES_SSLMODE lands on postgres.sslMode. Unknown segments stay lowercase.
func canonicalizeEnvKey(envKey string, fileKeys map[string]any) string {
	node := fileKeys
	path := make([]string, 0, 4)

	for segment := range strings.SplitSeq(strings.ToLower(envKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(node, segment)
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

// matchKey finds segment among node's keys ignoring case and punctuation.
func matchKey(node map[string]any, segment string) (string, map[string]any) {
	for key, value := range node {
		if foldKey(key) == segment {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(key string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, key)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<i>_{HOST,PORT,USERNAME,PASSWORD} for i = 0, 1, ...
// and stops at the first index without both host and port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
