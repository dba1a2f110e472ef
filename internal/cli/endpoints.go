package cli

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"resty.dev/v3"

	"akeneo/endpoints/internal/container"
	"akeneo/endpoints/internal/domain"
	"akeneo/endpoints/internal/endpoint"
)

type appFunc func() *container.Container

func NewTypeCmd(app appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <resource-type>",
		Short: "Print the collection endpoint of a resource type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			resourceType, err := parseResourceType(args[0])
			if err != nil {
				return err
			}

			parent, err := cc.Flags().GetString("parent")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			path, err := app().Resolver.ForResourceType(resourceType, parent)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().String("parent", "", "Attribute code owning the options")

	return cmd
}

func NewInstanceCmd(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "instance <resource-type> <code>...",
		Short: "Print the endpoint of a resource instance",
		Long: `Builds a model from the given codes and prints its endpoint.
Attribute options take the attribute code followed by the option code.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			resourceType, err := parseResourceType(args[0])
			if err != nil {
				return err
			}

			model, err := modelFromCodes(resourceType, args[1:])
			if err != nil {
				return err
			}

			path, ok := app().Resolver.ForResource(model)
			if !ok {
				return fmt.Errorf("no endpoint for %s", resourceType)
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), path)
			return err
		},
	}
}

func NewFormatCmd(app appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <resource-type> <code>...",
		Short: "Format the endpoint of a resource from positional codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			resourceType, err := parseResourceType(args[0])
			if err != nil {
				return err
			}

			absolute, err := cc.Flags().GetBool("url")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			var path string
			if absolute {
				req, err := app().Requests.Codes(cc.Context(), http.MethodGet, resourceType, args[1:]...)
				if err != nil {
					return err
				}
				path = req.URL
			} else {
				path, err = app().Resolver.ForResourceCodes(resourceType, args[1:]...)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().Bool("url", false, "Print the absolute URL instead of the path")

	return cmd
}

func NewPaginateCmd(app appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paginate <resource-type>",
		Short: "Print a paginated collection endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			resourceType, err := parseResourceType(args[0])
			if err != nil {
				return err
			}

			pagination, err := paginationFromFlags(cc, app())
			if err != nil {
				return err
			}

			flags := cc.Flags()
			resolver := app().Resolver

			var path string
			if flags.Changed("parent") {
				parent, _ := flags.GetString("parent")
				path, err = resolver.ForPaginationWithParent(resourceType, parent, pagination)
			} else {
				path, err = resolver.ForPagination(resourceType, pagination)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().String("parent", "", "Attribute code owning the options")
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", 0, "Page size (defaults to akeneo.page_limit)")
	cmd.Flags().Bool("with-count", false, "Ask for the total item count (defaults to akeneo.with_count)")

	return cmd
}

func NewRequestCmd(app appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request <method> <resource-type> [code]...",
		Short: "Print the method and absolute URL of a resource request",
		Long: `With codes, addresses a single resource instance. Without codes, addresses
the collection of the resource type, or one page of it when --page, --limit or
--with-count is given. Attribute options need --parent without codes.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])

			resourceType, err := parseResourceType(args[1])
			if err != nil {
				return err
			}

			req, err := buildRequest(cc, app(), method, resourceType, args[2:])
			if err != nil {
				return err
			}

			url := req.URL
			if len(req.QueryParams) > 0 {
				url += "?" + req.QueryParams.Encode()
			}

			_, err = fmt.Fprintf(cc.OutOrStdout(), "%s %s\n", req.Method, url)
			return err
		},
	}

	cmd.Flags().String("parent", "", "Attribute code owning the options")
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", 0, "Page size (defaults to akeneo.page_limit)")
	cmd.Flags().Bool("with-count", false, "Ask for the total item count (defaults to akeneo.with_count)")

	return cmd
}

func buildRequest(
	cc *cobra.Command,
	app *container.Container,
	method string,
	resourceType domain.ResourceType,
	codes []string,
) (*resty.Request, error) {
	ctx := cc.Context()
	flags := cc.Flags()

	if len(codes) > 0 {
		model, err := modelFromCodes(resourceType, codes)
		if err != nil {
			return nil, err
		}
		return app.Requests.Resource(ctx, method, model)
	}

	if method != http.MethodGet {
		return nil, fmt.Errorf("%w: %s on a collection is not supported", ErrInvalidArgument, method)
	}

	parent, err := flags.GetString("parent")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if resourceType == domain.ResourceTypeAttributeOption && parent == "" {
		return nil, fmt.Errorf("%w: %s needs --parent", ErrInvalidArgument, resourceType)
	}

	paginated := flags.Changed("page") || flags.Changed("limit") || flags.Changed("with-count")
	if !paginated {
		return app.Requests.Collection(ctx, resourceType, parent)
	}

	pagination, err := paginationFromFlags(cc, app)
	if err != nil {
		return nil, err
	}
	if resourceType == domain.ResourceTypeAttributeOption {
		return app.Requests.Options(ctx, parent, pagination)
	}
	return app.Requests.Page(ctx, resourceType, pagination)
}

func NewListCmd(app appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the collection endpoint of every resource type",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			parent, err := cc.Flags().GetString("parent")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			endpoints, err := app().Service.CollectionEndpoints(cc.Context(), parent)
			if err != nil {
				return err
			}

			for _, e := range endpoints {
				if _, err := fmt.Fprintf(cc.OutOrStdout(), "%s\t%s\n", e.ResourceType, e.Path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().String("parent", "", "Attribute code for the attribute option collection")

	return cmd
}

func paginationFromFlags(cc *cobra.Command, app *container.Container) (endpoint.Pagination, error) {
	flags := cc.Flags()

	page, err := flags.GetInt("page")
	if err != nil {
		return endpoint.Pagination{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	pagination := endpoint.Pagination{
		Page:      page,
		Limit:     app.Config.Akeneo.PageLimit,
		WithCount: app.Config.Akeneo.WithCount,
	}

	if flags.Changed("limit") {
		if pagination.Limit, err = flags.GetInt("limit"); err != nil {
			return endpoint.Pagination{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}
	if flags.Changed("with-count") {
		if pagination.WithCount, err = flags.GetBool("with-count"); err != nil {
			return endpoint.Pagination{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}

	if pagination.Page < 1 || pagination.Limit < 1 {
		return endpoint.Pagination{}, fmt.Errorf("%w: page and limit must be at least 1", ErrInvalidArgument)
	}

	return pagination, nil
}

func modelFromCodes(resourceType domain.ResourceType, codes []string) (domain.Model, error) {
	want := 1
	if resourceType == domain.ResourceTypeAttributeOption {
		want = 2
	}
	if len(codes) != want {
		return nil, fmt.Errorf("%w: %s takes %d code(s), got %d", ErrInvalidArgument, resourceType, want, len(codes))
	}

	switch resourceType {
	case domain.ResourceTypeProduct:
		return &domain.Product{Identifier: codes[0]}, nil
	case domain.ResourceTypeAttribute:
		return &domain.Attribute{Code: codes[0]}, nil
	case domain.ResourceTypeAttributeOption:
		return &domain.AttributeOption{Attribute: codes[0], Code: codes[1]}, nil
	case domain.ResourceTypeFamily:
		return &domain.Family{Code: codes[0]}, nil
	case domain.ResourceTypeCategory:
		return &domain.Category{Code: codes[0]}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, resourceType)
}
