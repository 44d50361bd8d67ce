package syscfghelper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/asyncclient"
	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/twitterclient"
	"github.com/WangWilly/xRest/pkgs/commonpkg/logging"
	"github.com/gookit/color"

	log "github.com/sirupsen/logrus"
)

// GetMainClient builds the transport and the async client over it. With
// verify set, the credentials are checked against account/verify_credentials.
func (h *helper) GetMainClient(ctx context.Context, verify bool) (*twitterclient.Client, *asyncclient.Client, error) {
	logger := log.WithField("caller", "syscfghelper.GetMainClient")

	transport := twitterclient.New(h.sysConfig.TwitterClientConfig())
	transport.SetDebug(h.cliParams.IsDebug)
	if h.cliParams.IsDebug {
		transport.EnableRequestCounting()
	}

	////////////////////////////////////////////////////////////////////////////

	if h.clientLogFile == nil {
		clientLogFile, err := os.OpenFile(
			filepath.Join(h.sysStateDir, CLIENT_LOG_FILE),
			os.O_TRUNC|os.O_WRONLY|os.O_CREATE,
			0644,
		)
		if err != nil {
			logger.Errorln("failed to create log file:", err)
			return nil, nil, err
		}
		h.clientLogFile = clientLogFile
	}
	transport.SetLogger(logging.NewClientLogger(h.clientLogFile))

	client := asyncclient.New(transport)
	if !verify {
		return transport, client, nil
	}

	////////////////////////////////////////////////////////////////////////////

	res, err := client.GetAccountVerifyCredentials(ctx, asyncclient.Params{
		"skip_status": true,
	}).Await(ctx)
	if err != nil {
		logger.Errorln("failed to verify credentials:", err)
		return nil, nil, fmt.Errorf("verify credentials: %w", err)
	}

	logger.Infoln("signed in as:", color.FgLightBlue.Render(res.Get("screen_name").String()))
	return transport, client, nil
}
