package version

// 빌드 시 ldflags로 주입된다.
// 예: -ldflags "-X github.com/minkyu-lab/site-factory/internal/version.Version=v0.2.0"
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// GetVersion 버전 문자열을 반환한다
func GetVersion() string {
	return Version
}

// GetBuildDate 빌드 날짜를 반환한다
func GetBuildDate() string {
	return BuildDate
}

// GetGitCommit Git 커밋 해시를 반환한다
func GetGitCommit() string {
	return GitCommit
}
