package renderer

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uMVP;
uniform mat4 uModel;
uniform vec2 uTexRepeat;
uniform vec2 uTexOffset;

out vec3 vNormal;
out vec2 vUV;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vNormal = transpose(inverse(mat3(uModel))) * aNormal;
	vUV = aUV * uTexRepeat + uTexOffset;
}
`

const fragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;

uniform vec4 uColor;
uniform bool uTextured;
uniform sampler2D uTexture;

uniform bool uLit;
uniform float uAmbient;
uniform float uDiffuse;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	vec4 color = uColor;
	if (uTextured) {
		color *= texture(uTexture, vUV);
	}
	if (uLit) {
		float diffuse = max(dot(normalize(vNormal), uLightDir), 0.0);
		color.rgb *= min(uAmbient + uDiffuse * diffuse, 1.0);
	}
	FragColor = color;
}
`
