package resource

// Catalog returns the descriptors of every resource collection exposed under
// /api/. The slice is rebuilt on each call so callers may not mutate shared
// state; route registration happens once at startup.
//
// Audit columns (creador, creacion, modificador, modificacion) and id are
// managed by the engine and therefore never appear in Required or Updatable.
func Catalog() []Descriptor {
	return []Descriptor{
		// --- geographic divisions (DPA) ---
		{
			Name:      "provincias",
			Table:     "provincias",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "codigo", "zonal_id", "activo"},
			OrderByID: true,
		},
		{
			Name:      "cantones",
			Table:     "cantones",
			Required:  []string{"nombre", "provincia_id"},
			Updatable: []string{"nombre", "codigo", "provincia_id", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/provincia/{provincia_id}",
					Params: []string{"provincia_id"},
					Query: `SELECT c.*, p.nombre AS provincia_nombre
						FROM cantones c
						JOIN provincias p ON p.id = c.provincia_id
						WHERE c.provincia_id = $1
						ORDER BY c.id`,
				},
			},
		},
		{
			Name:      "parroquias",
			Table:     "parroquias",
			Required:  []string{"nombre", "canton_id"},
			Updatable: []string{"nombre", "codigo", "canton_id", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/canton/{canton_id}",
					Params: []string{"canton_id"},
					Query: `SELECT pa.*, c.nombre AS canton_nombre, pr.nombre AS provincia_nombre
						FROM parroquias pa
						JOIN cantones c ON c.id = pa.canton_id
						JOIN provincias pr ON pr.id = c.provincia_id
						WHERE pa.canton_id = $1
						ORDER BY pa.id`,
				},
			},
		},
		{
			Name:      "zonales",
			Table:     "zonales",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},

		// --- emergencies and events ---
		{
			Name:      "emergencias",
			Table:     "emergencias",
			Required:  []string{"nombre", "emergencia_estado_id"},
			Updatable: []string{"nombre", "descripcion", "emergencia_estado_id", "fecha_inicio", "fecha_fin", "activo"},
			OrderByID: true,
		},
		{
			Name:      "emergencia_estados",
			Table:     "emergencia_estados",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "eventos",
			Table:     "eventos",
			Required:  []string{"nombre", "evento_tipo_id", "parroquia_id"},
			Updatable: []string{"nombre", "descripcion", "evento_tipo_id", "emergencia_id", "parroquia_id", "latitud", "longitud", "fecha_evento", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/emergencia/{emergencia_id}",
					Params: []string{"emergencia_id"},
					Query: `SELECT ev.*, et.nombre AS evento_tipo_nombre, pa.nombre AS parroquia_nombre
						FROM eventos ev
						JOIN eventos_tipos et ON et.id = ev.evento_tipo_id
						JOIN parroquias pa ON pa.id = ev.parroquia_id
						WHERE ev.emergencia_id = $1
						ORDER BY ev.id`,
				},
				{
					Path:   "/parroquia/{parroquia_id}",
					Params: []string{"parroquia_id"},
					Query: `SELECT ev.*, et.nombre AS evento_tipo_nombre
						FROM eventos ev
						JOIN eventos_tipos et ON et.id = ev.evento_tipo_id
						WHERE ev.parroquia_id = $1`,
				},
			},
		},
		{
			Name:      "eventos_tipos",
			Table:     "eventos_tipos",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "situaciones_reporte",
			Table:     "situaciones_reporte",
			Required:  []string{"emergencia_id", "detalle"},
			Updatable: []string{"emergencia_id", "detalle", "fecha_reporte", "activo"},
		},

		// --- COE structure ---
		{
			Name:      "coes",
			Table:     "coes",
			Required:  []string{"nombre", "siglas"},
			Updatable: []string{"nombre", "siglas", "descripcion", "provincia_id", "canton_id", "activo"},
			OrderByID: true,
		},
		{
			Name:      "mesas_grupos",
			Table:     "mesas_grupos",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "mesas",
			Table:     "mesas",
			Required:  []string{"nombre", "coe_id", "mesa_grupo_id"},
			Updatable: []string{"nombre", "siglas", "descripcion", "coe_id", "mesa_grupo_id", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/coe/{coe_id}",
					Params: []string{"coe_id"},
					Query: `SELECT m.*, mg.nombre AS mesa_grupo_nombre
						FROM mesas m
						JOIN mesas_grupos mg ON mg.id = m.mesa_grupo_id
						WHERE m.coe_id = $1
						ORDER BY m.id`,
				},
			},
		},
		{
			Name:      "mesa_integrantes",
			Table:     "mesa_integrantes",
			Required:  []string{"mesa_id", "institucion_id"},
			Updatable: []string{"mesa_id", "institucion_id", "rol", "activo"},
			Filters: []Filter{
				{
					Path:   "/mesa/{mesa_id}",
					Params: []string{"mesa_id"},
					Query: `SELECT mi.*, i.nombre AS institucion_nombre
						FROM mesa_integrantes mi
						JOIN instituciones i ON i.id = mi.institucion_id
						WHERE mi.mesa_id = $1`,
				},
			},
		},
		{
			Name:      "instituciones",
			Table:     "instituciones",
			Required:  []string{"nombre", "institucion_tipo_id"},
			Updatable: []string{"nombre", "siglas", "institucion_tipo_id", "activo"},
		},
		{
			Name:      "institucion_tipos",
			Table:     "institucion_tipos",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},

		// --- users and profiles ---
		{
			Name:      "usuarios",
			Table:     "usuarios",
			Required:  []string{"usuario", "clave"},
			Updatable: []string{"usuario", "clave", "descripcion", "activo"},
			OrderByID: true,
		},
		{
			Name:      "perfiles",
			Table:     "perfiles",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "usuario_perfil_coe_dpa_mesa",
			Table:     "usuario_perfil_coe_dpa_mesa",
			Required:  []string{"usuario_id", "perfil_id", "coe_id"},
			Updatable: []string{"usuario_id", "perfil_id", "coe_id", "mesa_id", "provincia_id", "canton_id", "activo"},
			Filters: []Filter{
				{
					Path:   "/usuario/{usuario_id}",
					Params: []string{"usuario_id"},
					Query: `SELECT up.*, pe.nombre AS perfil_nombre, co.nombre AS coe_nombre,
							me.nombre AS mesa_nombre, pr.nombre AS provincia_nombre
						FROM usuario_perfil_coe_dpa_mesa up
						JOIN perfiles pe ON pe.id = up.perfil_id
						JOIN coes co ON co.id = up.coe_id
						LEFT JOIN mesas me ON me.id = up.mesa_id
						LEFT JOIN provincias pr ON pr.id = up.provincia_id
						WHERE up.usuario_id = $1`,
				},
			},
		},

		// --- affectation records ---
		{
			Name:      "grupos_afectacion",
			Table:     "grupos_afectacion",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "variables_afectacion",
			Table:     "variables_afectacion",
			Required:  []string{"nombre", "grupo_afectacion_id"},
			Updatable: []string{"nombre", "unidad", "grupo_afectacion_id", "activo"},
			Filters: []Filter{
				{
					Path:   "/grupo/{grupo_afectacion_id}",
					Params: []string{"grupo_afectacion_id"},
					Query: `SELECT va.*, ga.nombre AS grupo_afectacion_nombre
						FROM variables_afectacion va
						JOIN grupos_afectacion ga ON ga.id = va.grupo_afectacion_id
						WHERE va.grupo_afectacion_id = $1`,
				},
			},
		},
		{
			Name:      "afectaciones",
			Table:     "afectaciones",
			Required:  []string{"emergencia_id", "variable_afectacion_id", "parroquia_id", "cantidad"},
			Updatable: []string{"emergencia_id", "variable_afectacion_id", "parroquia_id", "cantidad", "costo", "fecha_corte", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/emergencia/{emergencia_id}",
					Params: []string{"emergencia_id"},
					Query: `SELECT af.*, va.nombre AS variable_nombre, pa.nombre AS parroquia_nombre
						FROM afectaciones af
						JOIN variables_afectacion va ON va.id = af.variable_afectacion_id
						JOIN parroquias pa ON pa.id = af.parroquia_id
						WHERE af.emergencia_id = $1
						ORDER BY af.id`,
				},
				{
					Path:   "/emergencia/{emergencia_id}/parroquia/{parroquia_id}",
					Params: []string{"emergencia_id", "parroquia_id"},
					Query: `SELECT af.*, va.nombre AS variable_nombre
						FROM afectaciones af
						JOIN variables_afectacion va ON va.id = af.variable_afectacion_id
						WHERE af.emergencia_id = $1 AND af.parroquia_id = $2`,
				},
			},
		},
		{
			Name:      "afectacion_infraestructura",
			Table:     "afectacion_infraestructura",
			Required:  []string{"emergencia_id", "infraestructura_tipo_id", "parroquia_id"},
			Updatable: []string{"emergencia_id", "infraestructura_tipo_id", "parroquia_id", "cantidad", "costo", "descripcion", "activo"},
		},
		{
			Name:      "infraestructura_tipos",
			Table:     "infraestructura_tipos",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "personas_afectadas",
			Table:     "personas_afectadas",
			Required:  []string{"emergencia_id", "parroquia_id"},
			Updatable: []string{"emergencia_id", "parroquia_id", "heridos", "fallecidos", "desaparecidos", "damnificados", "activo"},
		},

		// --- shelters ---
		{
			Name:      "alojamiento_tipos",
			Table:     "alojamiento_tipos",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "alojamientos",
			Table:     "alojamientos",
			Required:  []string{"nombre", "alojamiento_tipo_id", "parroquia_id"},
			Updatable: []string{"nombre", "alojamiento_tipo_id", "parroquia_id", "direccion", "capacidad", "latitud", "longitud", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/parroquia/{parroquia_id}",
					Params: []string{"parroquia_id"},
					Query: `SELECT al.*, at.nombre AS alojamiento_tipo_nombre, pa.nombre AS parroquia_nombre
						FROM alojamientos al
						JOIN alojamiento_tipos at ON at.id = al.alojamiento_tipo_id
						JOIN parroquias pa ON pa.id = al.parroquia_id
						WHERE al.parroquia_id = $1
						ORDER BY al.id`,
				},
			},
		},
		{
			Name:      "alojamientos_activados",
			Table:     "alojamientos_activados",
			Required:  []string{"alojamiento_id", "emergencia_id"},
			Updatable: []string{"alojamiento_id", "emergencia_id", "fecha_activacion", "fecha_cierre", "ocupacion", "activo"},
			Filters: []Filter{
				{
					Path:   "/emergencia/{emergencia_id}",
					Params: []string{"emergencia_id"},
					Query: `SELECT aa.*, al.nombre AS alojamiento_nombre, pa.nombre AS parroquia_nombre
						FROM alojamientos_activados aa
						JOIN alojamientos al ON al.id = aa.alojamiento_id
						JOIN parroquias pa ON pa.id = al.parroquia_id
						WHERE aa.emergencia_id = $1`,
				},
			},
		},
		{
			Name:      "albergados",
			Table:     "albergados",
			Required:  []string{"alojamiento_activado_id"},
			Updatable: []string{"alojamiento_activado_id", "hombres", "mujeres", "ninos", "fecha_corte", "activo"},
		},

		// --- resolutions and session minutes ---
		{
			Name:      "coe_actas",
			Table:     "coe_actas",
			Required:  []string{"coe_id", "emergencia_id", "fecha_sesion"},
			Updatable: []string{"coe_id", "emergencia_id", "fecha_sesion", "descripcion", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/emergencia/{emergencia_id}",
					Params: []string{"emergencia_id"},
					Query: `SELECT ca.*, co.nombre AS coe_nombre
						FROM coe_actas ca
						JOIN coes co ON co.id = ca.coe_id
						WHERE ca.emergencia_id = $1
						ORDER BY ca.id`,
				},
			},
		},
		{
			Name:      "coe_acta_resoluciones",
			Table:     "coe_acta_resoluciones",
			Required:  []string{"coe_acta_id", "detalle"},
			Updatable: []string{"coe_acta_id", "detalle", "fecha_cumplimiento", "cumplida", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/acta/{coe_acta_id}",
					Params: []string{"coe_acta_id"},
					Query: `SELECT r.*
						FROM coe_acta_resoluciones r
						WHERE r.coe_acta_id = $1
						ORDER BY r.id`,
				},
			},
		},
		{
			Name:      "coe_acta_resolucion_mesas",
			Table:     "coe_acta_resolucion_mesas",
			Required:  []string{"coe_acta_resolucion_id", "mesa_id"},
			Updatable: []string{"coe_acta_resolucion_id", "mesa_id", "activo"},
			Filters: []Filter{
				{
					Path:   "/resolucion/{coe_acta_resolucion_id}",
					Params: []string{"coe_acta_resolucion_id"},
					Query: `SELECT rm.*, me.nombre AS mesa_nombre
						FROM coe_acta_resolucion_mesas rm
						JOIN mesas me ON me.id = rm.mesa_id
						WHERE rm.coe_acta_resolucion_id = $1`,
				},
			},
		},
		{
			Name:      "resoluciones_seguimientos",
			Table:     "resoluciones_seguimientos",
			Required:  []string{"coe_acta_resolucion_id", "detalle"},
			Updatable: []string{"coe_acta_resolucion_id", "detalle", "avance", "fecha_seguimiento", "activo"},
		},

		// --- response actions ---
		{
			Name:      "acciones_respuesta_estados",
			Table:     "acciones_respuesta_estados",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "acciones_respuesta_origenes",
			Table:     "acciones_respuesta_origenes",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:     "acciones_respuesta",
			Table:    "acciones_respuesta",
			Required: []string{"usuario_id", "accion_respuesta_origen_id", "accion_respuesta_estado_id"},
			// The insert and update paths agree on coe_acta_resolucion_mesa_id;
			// that is the column that exists in the schema.
			Updatable: []string{"usuario_id", "accion_respuesta_origen_id", "accion_respuesta_estado_id", "coe_acta_resolucion_mesa_id", "detalle", "fecha_compromiso", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/usuario/{usuario_id}",
					Params: []string{"usuario_id"},
					Query: `SELECT ar.*, ae.nombre AS estado_nombre, ao.nombre AS origen_nombre
						FROM acciones_respuesta ar
						JOIN acciones_respuesta_estados ae ON ae.id = ar.accion_respuesta_estado_id
						JOIN acciones_respuesta_origenes ao ON ao.id = ar.accion_respuesta_origen_id
						WHERE ar.usuario_id = $1
						ORDER BY ar.id`,
				},
				{
					Path:   "/estado/{accion_respuesta_estado_id}",
					Params: []string{"accion_respuesta_estado_id"},
					Query: `SELECT ar.*, u.usuario AS usuario_nombre
						FROM acciones_respuesta ar
						JOIN usuarios u ON u.id = ar.usuario_id
						WHERE ar.accion_respuesta_estado_id = $1`,
				},
			},
		},

		// --- action plans and execution activities ---
		{
			Name:      "planes_accion",
			Table:     "planes_accion",
			Required:  []string{"nombre", "emergencia_id"},
			Updatable: []string{"nombre", "descripcion", "emergencia_id", "fecha_inicio", "fecha_fin", "activo"},
			OrderByID: true,
		},
		{
			Name:      "plan_accion_actividades",
			Table:     "plan_accion_actividades",
			Required:  []string{"plan_accion_id", "detalle"},
			Updatable: []string{"plan_accion_id", "detalle", "responsable", "fecha_limite", "activo"},
			Filters: []Filter{
				{
					Path:   "/plan/{plan_accion_id}",
					Params: []string{"plan_accion_id"},
					Query: `SELECT pa.*
						FROM plan_accion_actividades pa
						WHERE pa.plan_accion_id = $1`,
				},
			},
		},
		{
			Name:       "actividades_ejecucion",
			Table:      "actividades_ejecucion",
			Required:   []string{"accion_respuesta_id", "detalle"},
			Updatable:  []string{"accion_respuesta_id", "detalle", "avance", "fecha_ejecucion", "activo"},
			SoftDelete: true,
			OrderByID:  true,
			Filters: []Filter{
				{
					Path:   "/accion_respuesta/{accion_respuesta_id}",
					Params: []string{"accion_respuesta_id"},
					Query: `SELECT ae.*
						FROM actividades_ejecucion ae
						WHERE ae.accion_respuesta_id = $1 AND ae.activo = true
						ORDER BY ae.id`,
				},
			},
		},
		{
			Name:       "actividad_ejecucion_funciones",
			Table:      "actividad_ejecucion_funciones",
			Required:   []string{"actividad_ejecucion_id", "funcion"},
			Updatable:  []string{"actividad_ejecucion_id", "funcion", "responsable", "activo"},
			SoftDelete: true,
		},
		{
			Name:       "actividad_ejecucion_dpa",
			Table:      "actividad_ejecucion_dpa",
			Required:   []string{"actividad_ejecucion_id", "parroquia_id"},
			Updatable:  []string{"actividad_ejecucion_id", "parroquia_id", "activo"},
			SoftDelete: true,
			Filters: []Filter{
				{
					Path:   "/actividad/{actividad_ejecucion_id}",
					Params: []string{"actividad_ejecucion_id"},
					Query: `SELECT ad.*, pa.nombre AS parroquia_nombre
						FROM actividad_ejecucion_dpa ad
						JOIN parroquias pa ON pa.id = ad.parroquia_id
						WHERE ad.actividad_ejecucion_id = $1 AND ad.activo = true`,
				},
			},
		},

		// --- requirements, resources and assistance ---
		{
			Name:      "requerimiento_estados",
			Table:     "requerimiento_estados",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "requerimientos",
			Table:     "requerimientos",
			Required:  []string{"emergencia_id", "mesa_id", "detalle"},
			Updatable: []string{"emergencia_id", "mesa_id", "requerimiento_estado_id", "detalle", "cantidad", "costo_estimado", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/emergencia/{emergencia_id}",
					Params: []string{"emergencia_id"},
					Query: `SELECT re.*, me.nombre AS mesa_nombre, es.nombre AS estado_nombre
						FROM requerimientos re
						JOIN mesas me ON me.id = re.mesa_id
						LEFT JOIN requerimiento_estados es ON es.id = re.requerimiento_estado_id
						WHERE re.emergencia_id = $1
						ORDER BY re.id`,
				},
			},
		},
		{
			Name:      "recurso_tipos",
			Table:     "recurso_tipos",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "recursos",
			Table:     "recursos",
			Required:  []string{"nombre", "recurso_tipo_id"},
			Updatable: []string{"nombre", "recurso_tipo_id", "cantidad", "institucion_id", "activo"},
		},
		{
			Name:      "insumo_categorias",
			Table:     "insumo_categorias",
			Required:  []string{"nombre"},
			Updatable: []string{"nombre", "descripcion", "activo"},
		},
		{
			Name:      "insumos",
			Table:     "insumos",
			Required:  []string{"nombre", "insumo_categoria_id"},
			Updatable: []string{"nombre", "insumo_categoria_id", "unidad", "activo"},
		},
		{
			Name:      "entregas_asistencia",
			Table:     "entregas_asistencia",
			Required:  []string{"emergencia_id", "parroquia_id", "fecha_entrega"},
			Updatable: []string{"emergencia_id", "parroquia_id", "fecha_entrega", "beneficiarios", "observacion", "activo"},
			OrderByID: true,
			Filters: []Filter{
				{
					Path:   "/emergencia/{emergencia_id}",
					Params: []string{"emergencia_id"},
					Query: `SELECT en.*, pa.nombre AS parroquia_nombre
						FROM entregas_asistencia en
						JOIN parroquias pa ON pa.id = en.parroquia_id
						WHERE en.emergencia_id = $1
						ORDER BY en.id`,
				},
			},
		},
		{
			Name:      "entrega_asistencia_detalles",
			Table:     "entrega_asistencia_detalles",
			Required:  []string{"entrega_asistencia_id", "insumo_id", "cantidad"},
			Updatable: []string{"entrega_asistencia_id", "insumo_id", "cantidad", "costo_unitario", "activo"},
			Filters: []Filter{
				{
					Path:   "/entrega/{entrega_asistencia_id}",
					Params: []string{"entrega_asistencia_id"},
					Query: `SELECT de.*, ins.nombre AS insumo_nombre
						FROM entrega_asistencia_detalles de
						JOIN insumos ins ON ins.id = de.insumo_id
						WHERE de.entrega_asistencia_id = $1`,
				},
			},
		},
		{
			Name:      "donaciones",
			Table:     "donaciones",
			Required:  []string{"emergencia_id", "descripcion"},
			Updatable: []string{"emergencia_id", "descripcion", "donante", "cantidad", "valor_estimado", "activo"},
		},
		{
			Name:      "voluntarios",
			Table:     "voluntarios",
			Required:  []string{"nombres", "identificacion"},
			Updatable: []string{"nombres", "identificacion", "telefono", "institucion_id", "parroquia_id", "activo"},
		},
		{
			Name:      "capacitaciones",
			Table:     "capacitaciones",
			Required:  []string{"nombre", "fecha_capacitacion"},
			Updatable: []string{"nombre", "descripcion", "fecha_capacitacion", "participantes", "activo"},
		},
	}
}
