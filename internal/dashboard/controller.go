package dashboard

// Controller is the load/refresh state machine:
//
//	loading ──→ ready | error
//	ready ──refresh──→ refreshing ──→ ready | error
//
// While refreshing, the prior ViewModel stays visible. Retries are
// always user-initiated; there are no automatic retries or backoff.
// The controller is owned by the UI event loop and is not safe for
// concurrent use.
type Controller struct {
	status Status
	vm     *ViewModel
	err    error
}

type Status uint8

const (
	StatusLoading Status = iota
	StatusRefreshing
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusRefreshing:
		return "refreshing"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

func NewController() *Controller {
	return &Controller{status: StatusLoading}
}

// StartLoad transitions into an in-flight state and returns it:
// refreshing when prior data exists (it stays visible), loading
// otherwise.
func (c *Controller) StartLoad() Status {
	if c.vm != nil {
		c.status = StatusRefreshing
	} else {
		c.status = StatusLoading
	}
	c.err = nil
	return c.status
}

// Complete swaps in a freshly built ViewModel. The swap is whole-object;
// no partially updated state is ever observable.
func (c *Controller) Complete(vm *ViewModel) {
	c.vm = vm
	c.err = nil
	c.status = StatusReady
}

// Fail records a required-tier failure. Prior data, if any, is kept so
// the next StartLoad refreshes rather than reloads.
func (c *Controller) Fail(err error) {
	c.err = err
	c.status = StatusError
}

func (c *Controller) Status() Status { return c.status }

// ViewModel returns the currently displayable data. It stays non-nil
// across refreshes and failed refreshes once a load has succeeded.
func (c *Controller) ViewModel() *ViewModel { return c.vm }

func (c *Controller) Err() error { return c.err }
