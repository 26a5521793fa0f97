package generator

import "github.com/example/genrepo/internal/config"

// Role identifies which kind of file a template renders.
type Role string

const (
	// RoleBase is the shared base repository file (base/combined modes).
	RoleBase Role = "base"
	// RoleStandalone is a self-contained per-model repository file.
	RoleStandalone Role = "standalone"
	// RoleUser is the per-model user repository created once in combined mode.
	RoleUser Role = "user"
)

// Packaged template identifiers.
const (
	TplBaseSQLModelSync    = "base_repository_sqlmodel_sync.py.tmpl"
	TplBaseSQLModelAsync   = "base_repository_sqlmodel_async.py.tmpl"
	TplBaseSQLAlchemySync  = "base_repository_sqlalchemy_sync.py.tmpl"
	TplBaseSQLAlchemyAsync = "base_repository_sqlalchemy_async.py.tmpl"

	TplStandaloneSQLModel   = "repository_sqlmodel.py.tmpl"
	TplStandaloneSQLAlchemy = "repository_sqlalchemy.py.tmpl"

	TplUserStub = "model_repository_user_stub.py.tmpl"

	TplBaseStub       = "repository_base_stub.py.tmpl"
	TplStandaloneStub = "repository_standalone_stub.py.tmpl"
)

// SelectTemplate maps a validated configuration and file role to exactly
// one packaged template identifier. The mapping is an explicit table with
// no fallback: combinations outside it are errors, never guesses.
//
// Priority: stub_only ignores orm/async entirely; the user-stub file is a
// single fixed template; base files split on orm x async; standalone files
// split on orm only (async is expressed inside the template via context).
func SelectTemplate(cfg *config.Config, role Role) (string, error) {
	if cfg.Generation.StubOnly {
		switch role {
		case RoleBase:
			return TplBaseStub, nil
		case RoleStandalone, RoleUser:
			return TplStandaloneStub, nil
		}
		return "", &TemplateSelectionError{Mode: cfg.Generation.Mode, ORM: cfg.ORM, Role: role}
	}
	switch role {
	case RoleBase:
		switch {
		case cfg.ORM == config.ORMSQLModel && !cfg.AsyncMode:
			return TplBaseSQLModelSync, nil
		case cfg.ORM == config.ORMSQLModel && cfg.AsyncMode:
			return TplBaseSQLModelAsync, nil
		case cfg.ORM == config.ORMSQLAlchemy && !cfg.AsyncMode:
			return TplBaseSQLAlchemySync, nil
		case cfg.ORM == config.ORMSQLAlchemy && cfg.AsyncMode:
			return TplBaseSQLAlchemyAsync, nil
		}
	case RoleStandalone:
		switch cfg.ORM {
		case config.ORMSQLModel:
			return TplStandaloneSQLModel, nil
		case config.ORMSQLAlchemy:
			return TplStandaloneSQLAlchemy, nil
		}
	case RoleUser:
		return TplUserStub, nil
	}
	return "", &TemplateSelectionError{Mode: cfg.Generation.Mode, ORM: cfg.ORM, Role: role}
}
