package service

import (
	"os"
	"testing"

	"github.com/wso2/record-reconciliation-service/internal/system/log"
)

func TestMain(m *testing.M) {
	if err := log.Init("error"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}
