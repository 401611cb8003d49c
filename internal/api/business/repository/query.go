package businessRepository

const (
	queryCreateCompany = `
		INSERT INTO companies (
			id,
			owner_id,
			name,
			industry,
			website,
			description,
			created_at,
			updated_at
		) VALUES (
			:id,
			:owner_id,
			:name,
			:industry,
			:website,
			:description,
			:created_at,
			:updated_at
		)
	`

	queryGetCompanyByID = `
		SELECT
			id,
			owner_id,
			name,
			industry,
			website,
			description,
			created_at,
			updated_at
		FROM companies
		WHERE id = :id
	`

	queryUpdateCompany = `
		UPDATE companies
		SET
			name = :name,
			industry = :industry,
			website = :website,
			description = :description,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryCreateAgentConfig = `
		INSERT INTO agent_configs (
			id,
			company_id,
			agent_name,
			voice_id,
			greeting,
			sales_script,
			objection_style,
			created_at,
			updated_at
		) VALUES (
			:id,
			:company_id,
			:agent_name,
			:voice_id,
			:greeting,
			:sales_script,
			:objection_style,
			:created_at,
			:updated_at
		)
	`

	queryGetAgentConfigByCompanyID = `
		SELECT
			id,
			company_id,
			agent_name,
			voice_id,
			greeting,
			sales_script,
			objection_style,
			created_at,
			updated_at
		FROM agent_configs
		WHERE company_id = :company_id
	`

	queryUpdateAgentConfig = `
		UPDATE agent_configs
		SET
			agent_name = :agent_name,
			voice_id = :voice_id,
			greeting = :greeting,
			sales_script = :sales_script,
			objection_style = :objection_style,
			updated_at = :updated_at
		WHERE company_id = :company_id
	`
)
