package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/brequin/catalog/config"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrStatus = errors.New("unexpected response status")

type Client struct {
	Http   *resty.Client
	Config config.Config

	courseIdPattern *regexp.Regexp
	logger          *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) (*Client, error) {
	courseIdPattern, err := regexp.Compile(cfg.CourseIdPattern)
	if err != nil {
		return nil, fmt.Errorf("course id pattern: %w", err)
	}
	if courseIdPattern.NumSubexp() < 1 {
		return nil, fmt.Errorf("course id pattern '%v' has no capture group", cfg.CourseIdPattern)
	}

	client := resty.New()
	client.SetTimeout(cfg.Timeout.Duration)
	client.SetRetryCount(cfg.Retries)
	client.SetRetryWaitTime(250 * time.Millisecond)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil || res == nil {
			return true
		}
		return res.StatusCode() == http.StatusTooManyRequests || res.StatusCode() >= http.StatusInternalServerError
	})
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	instrumentResty(client, logger)

	return &Client{
		Http:            client,
		Config:          cfg,
		courseIdPattern: courseIdPattern,
		logger:          logger,
	}, nil
}

func instrumentResty(client *resty.Client, logger *zap.Logger) {
	client.OnAfterResponse(func(cli *resty.Client, res *resty.Response) error {
		logger.Debug(
			"response",
			zap.String("method", res.Request.Method),
			zap.String("url", res.Request.URL),
			zap.Int("status", res.StatusCode()),
			zap.Duration("time", res.Time()),
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		logger.Debug("request failed", zap.String("url", req.URL), zap.Error(err))
	})
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: GET %v: %v", ErrStatus, url, res.Status())
	}
	return res.Body(), nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.Http.GetClient().CloseIdleConnections()
}
