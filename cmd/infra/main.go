package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/infra"
)

func main() {
	pulumi.Run(infra.Program())
}
