package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/minkyu-lab/site-factory/internal/utils"
)

// Config 파이프라인 설정. 리포트 스냅샷에 쓰이는 project/paths 외의
// 키도 그대로 보존한다.
type Config map[string]interface{}

// Section 설정의 하위 맵을 반환한다. 없으면 빈 맵.
func (c Config) Section(name string) map[string]interface{} {
	section, _ := c[name].(map[string]interface{})
	if section == nil {
		return map[string]interface{}{}
	}
	return section
}

// LoadConfig 설정 파일을 읽는다. 확장자에 따라 JSON 또는 YAML을 지원한다.
func LoadConfig(path string) (Config, error) {
	config := Config{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("설정 파일을 읽을 수 없습니다: %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("설정 파일 파싱에 실패했습니다: %s: %w", path, err)
		}
	default:
		if err := utils.ReadJSONFile(path, &config); err != nil {
			return nil, fmt.Errorf("설정 파일을 읽을 수 없습니다: %w", err)
		}
	}

	return config, nil
}
