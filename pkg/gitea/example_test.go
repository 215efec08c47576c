package gitea_test

import (
	"encoding/json"
	"fmt"

	"github.com/waspothegreat/gitea-go/pkg/gitea"
)

func ExampleRepoBuilder() {
	cfg := gitea.NewRepoBuilder().
		SetName("service").
		SetDescription("internal service").
		SetLicense("MIT").
		AutoInit().
		Private().
		Build()

	data, _ := json.Marshal(cfg)
	fmt.Println(string(data))
	// Output:
	// {"auto_init":true,"description":"internal service","gitignores":"","license":"MIT","name":"service","private":true,"readme":""}
}

func ExampleSplitFullName() {
	owner, repo, err := gitea.SplitFullName("gitea/tea")
	fmt.Println(owner, repo, err)
	// Output:
	// gitea tea <nil>
}
