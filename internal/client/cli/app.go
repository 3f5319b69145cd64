// Package cli implements the operator command that provisions a worker
// account on the server.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/client/client"
	"github.com/dmitrijs2005/gophworker/internal/client/config"
	"github.com/dmitrijs2005/gophworker/internal/common"
	pb "github.com/dmitrijs2005/gophworker/internal/proto"
	"github.com/dmitrijs2005/gophworker/internal/server/auth"
)

const (
	operatorSubject = "operator"
	mintedTokenTTL  = 5 * time.Minute
)

type App struct {
	config    *config.Config
	reader    *bufio.Reader
	out       io.Writer
	newClient func(endpoint, accessToken string) (client.Client, error)
}

func NewApp(cfg *config.Config) (*App, error) {
	return &App{
		config: cfg,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		newClient: func(endpoint, accessToken string) (client.Client, error) {
			return client.NewWorkerProvisioningClient(endpoint, accessToken)
		},
	}, nil
}

// accessToken returns the configured token, or mints a short-lived admin
// token when only the secret key is known.
func (a *App) accessToken() (string, error) {
	if a.config.AccessToken != "" {
		return a.config.AccessToken, nil
	}
	if a.config.SecretKey == "" {
		return "", nil
	}
	return auth.GenerateToken(operatorSubject, common.RoleAdmin, []byte(a.config.SecretKey), mintedTokenTTL)
}

// Run gathers the request from config, files and prompts, calls the server
// once and prints the outcome.
func (a *App) Run(ctx context.Context) error {

	token, err := a.accessToken()
	if err != nil {
		return fmt.Errorf("token error: %w", err)
	}

	workerData, err := ReadPayloadFile(a.config.WorkerDataFile)
	if err != nil {
		return err
	}
	userData, err := ReadPayloadFile(a.config.UserDataFile)
	if err != nil {
		return err
	}

	email := a.config.Email
	if email == "" {
		email, err = GetSimpleText(a.reader, "Worker email", a.out)
		if err != nil {
			return err
		}
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	c, err := a.newClient(a.config.ServerEndpointAddr, token)
	if err != nil {
		return fmt.Errorf("connect error: %w", err)
	}
	defer c.Close()

	if a.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}

	resp, err := c.CreateWorkerAccount(ctx, &pb.CreateWorkerAccountRequest{
		Email:      email,
		Password:   string(password),
		WorkerData: workerData,
		UserData:   userData,
	})
	if err != nil {
		return err
	}

	printResult(a.out, resp)
	return nil
}

func printResult(w io.Writer, r *pb.CreateWorkerAccountResponse) {
	fmt.Fprintln(w, r.Message)
	fmt.Fprintf(w, "worker uid: %s\n", r.WorkerUID)
	fmt.Fprintf(w, "worker id: %s\n", r.WorkerID)
	fmt.Fprintf(w, "account existed: %t\n", r.AlreadyExists)
}
